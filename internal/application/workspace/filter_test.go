package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

var catalogo = []entity.Product{
	{ID: 1, Name: "Tornillo M6", Description: "Acero inoxidable", CategoryID: 1},
	{ID: 2, Name: "Pintura blanca", Description: "Látex interior", CategoryID: 2},
	{ID: 3, Name: "TALADRO", Description: "Percutor 600W", CategoryID: 1},
	{ID: 4, Name: "Cable eléctrico", Description: "Cobre 12 AWG", CategoryID: 12},
}

func ids(list []entity.Product) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		category string
		want     []int64
	}{
		{"sin criterios devuelve todo en orden", "", "", []int64{1, 2, 3, 4}},
		{"término en nombre sin distinguir mayúsculas", "taladro", "", []int64{3}},
		{"término en descripción", "LÁTEX", "", []int64{2}},
		{"categoría exacta, no prefijo", "", "1", []int64{1, 3}},
		{"término y categoría", "m6", "1", []int64{1}},
		{"sin coincidencias", "martillo", "", []int64{}},
		{"término con espacios no se recorta", "  cobre ", "", []int64{}},
		{"categoría con espacios no coincide", "", " 1", []int64{}},
		{"categoría de dos dígitos", "", "12", []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterProducts(catalogo, tt.term, tt.category)))
		})
	}
}

func TestFilterProducts_Idempotente(t *testing.T) {
	once := FilterProducts(catalogo, "o", "1")
	twice := FilterProducts(once, "o", "1")
	assert.Equal(t, once, twice)
}

func TestFilterProducts_NoModificaEntrada(t *testing.T) {
	before := append([]entity.Product(nil), catalogo...)
	_ = FilterProducts(catalogo, "pintura", "2")
	assert.Equal(t, before, catalogo)
}

func TestFilterProducts_EspacioEsUnCaracterMas(t *testing.T) {
	list := []entity.Product{{ID: 1, Name: "Taladro"}, {ID: 2, Name: "Pintura blanca"}}
	assert.Equal(t, []int64{2}, ids(FilterProducts(list, " ", "")))
}

func TestFilterProducts_MinusculasSinPlegado(t *testing.T) {
	list := []entity.Product{{ID: 9, Name: "Straße"}}
	assert.Empty(t, FilterProducts(list, "ss", ""))
	assert.Len(t, FilterProducts(list, "STRASSE", ""), 0)
	assert.Len(t, FilterProducts(list, "STRAßE", ""), 1)
}
