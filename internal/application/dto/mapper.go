package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// Formatos de fecha vistos en el backend (ISO-8601 y el DATETIME de MySQL).
var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ToIdentity convierte el usuario de la API en Identity.
func ToIdentity(u UserDTO) entity.Identity {
	return entity.Identity{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		GivenName:   u.Nombre,
		FamilyName:  u.Apellido,
		Role:        u.Rol,
		Permissions: u.Permisos,
	}
}

// UserFromIdentity operación inversa (persistencia de user_data, backend local).
func UserFromIdentity(i entity.Identity) UserDTO {
	return UserDTO{
		ID:       i.ID,
		Username: i.Username,
		Email:    i.Email,
		Nombre:   i.GivenName,
		Apellido: i.FamilyName,
		Rol:      i.Role,
		Permisos: i.Permissions,
	}
}

// ToProduct convierte el DTO de la API en entidad.
func ToProduct(p ProductDTO) entity.Product {
	out := entity.Product{
		ID:           p.ID,
		Code:         p.Codigo,
		Name:         p.Nombre,
		Description:  p.Descripcion,
		UnitPrice:    p.Precio.Decimal,
		CurrentStock: p.StockActual,
		MinStock:     p.StockMinimo,
		CategoryID:   p.CategoriaID,
		CategoryName: p.CategoriaNombre,
		Image:        p.Imagen,
		Active:       p.Activo,
		CreatedAt:    parseTime(p.CreatedAt),
		UpdatedAt:    parseTime(p.UpdatedAt),
	}
	if p.PrecioCompra != nil {
		out.PurchasePrice = decimal.NewNullDecimal(p.PrecioCompra.Decimal)
	}
	return out
}

// ProductFromEntity convierte la entidad en DTO. Las fechas solo se emiten si existen.
func ProductFromEntity(p entity.Product) ProductDTO {
	out := ProductDTO{
		ID:              p.ID,
		Codigo:          p.Code,
		Nombre:          p.Name,
		Descripcion:     p.Description,
		Precio:          NewMoney(p.UnitPrice),
		StockActual:     p.CurrentStock,
		StockMinimo:     p.MinStock,
		CategoriaID:     p.CategoryID,
		CategoriaNombre: p.CategoryName,
		Imagen:          p.Image,
		Activo:          p.Active,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
	if p.PurchasePrice.Valid {
		pc := NewMoney(p.PurchasePrice.Decimal)
		out.PrecioCompra = &pc
	}
	return out
}

// ToCategory convierte el DTO de la API en entidad.
func ToCategory(c CategoryDTO) entity.Category {
	return entity.Category{ID: c.ID, Name: c.Nombre, Description: c.Descripcion}
}

// CategoryFromEntity operación inversa.
func CategoryFromEntity(c entity.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Nombre: c.Name, Descripcion: c.Description}
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
