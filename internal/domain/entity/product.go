package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo tal como lo expone la API remota.
// ID, Code, CategoryName y las fechas son asignados por el servidor.
type Product struct {
	ID            int64
	Code          string
	Name          string
	Description   string
	UnitPrice     decimal.Decimal     // precio de venta
	PurchasePrice decimal.NullDecimal // precio de compra; Valid=false si no se informa
	CurrentStock  int
	MinStock      int
	CategoryID    int64
	CategoryName  string
	Image         string
	Active        *bool // nil si el servidor no lo informa
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewEmptyProduct plantilla para el formulario de creación.
func NewEmptyProduct() Product {
	return Product{
		UnitPrice: decimal.Zero,
	}
}

// IsLowStock true si el stock actual no supera el mínimo.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// IsNew true si el producto aún no tiene ID del servidor.
func (p Product) IsNew() bool {
	return p.ID == 0
}

// Clone copia superficial; Active se duplica para que editar la copia no toque el original.
func (p Product) Clone() Product {
	c := p
	if p.Active != nil {
		v := *p.Active
		c.Active = &v
	}
	return c
}

// StockValue valor del inventario del producto (precio de venta × stock actual).
func (p Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
