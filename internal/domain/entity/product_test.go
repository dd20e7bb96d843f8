package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func TestProduct_IsLowStock(t *testing.T) {
	cases := []struct {
		name    string
		current int
		min     int
		want    bool
	}{
		{"por debajo del mínimo", 1, 5, true},
		{"igual al mínimo", 5, 5, true},
		{"por encima del mínimo", 6, 5, false},
		{"ambos en cero", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{CurrentStock: tc.current, MinStock: tc.min}
			assert.Equal(t, tc.want, p.IsLowStock())
		})
	}
}

func TestProduct_CloneNoComparteActive(t *testing.T) {
	active := true
	p := entity.Product{ID: 1, Name: "Tornillo", Active: &active}

	c := p.Clone()
	*c.Active = false
	c.Name = "Tuerca"

	assert.True(t, *p.Active, "editar la copia no debe modificar el original")
	assert.Equal(t, "Tornillo", p.Name)
}

func TestNewEmptyProduct(t *testing.T) {
	p := entity.NewEmptyProduct()
	assert.True(t, p.IsNew())
	assert.True(t, p.UnitPrice.Equal(decimal.Zero))
	assert.Zero(t, p.CurrentStock)
	assert.Zero(t, p.MinStock)
	assert.Zero(t, p.CategoryID)
	assert.Empty(t, p.Name)
}

func TestProduct_StockValue(t *testing.T) {
	p := entity.Product{UnitPrice: decimal.RequireFromString("9.99"), CurrentStock: 3}
	assert.Equal(t, "29.97", p.StockValue().StringFixed(2))
}

func TestSession_Authenticated(t *testing.T) {
	u := &entity.Identity{Username: "admin"}
	assert.True(t, entity.Session{User: u, Token: "T1"}.Authenticated())
	assert.False(t, entity.Session{User: u}.Authenticated(), "usuario sin token no es sesión válida")
	assert.False(t, entity.Session{User: u}.Consistent())
	assert.True(t, entity.Session{}.Consistent())
}

func TestIdentity_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana Pérez", entity.Identity{GivenName: "Ana", FamilyName: "Pérez"}.DisplayName())
	assert.Equal(t, "admin", entity.Identity{Username: "admin"}.DisplayName())
}
