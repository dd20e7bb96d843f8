package workspace

import (
	"strings"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// validateDraft reglas del formulario de producto antes de enviar.
func validateDraft(p entity.Product) error {
	var fields []string
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, "nombre")
	}
	if p.CategoryID == 0 {
		fields = append(fields, "categoria_id")
	}
	if p.UnitPrice.IsNegative() {
		fields = append(fields, "precio")
	}
	if p.PurchasePrice.Valid && p.PurchasePrice.Decimal.IsNegative() {
		fields = append(fields, "precio_compra")
	}
	if p.CurrentStock < 0 {
		fields = append(fields, "stock_actual")
	}
	if p.MinStock < 0 {
		fields = append(fields, "stock_minimo")
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
