package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/memory"
)

func newCatalogUseCase(t *testing.T) *CatalogUseCase {
	t.Helper()
	c := memory.NewCatalog()
	require.NoError(t, memory.Seed(c, bcrypt.MinCost))
	return NewCatalogUseCase(c)
}

func TestCreateProduct_AceptaStockHeredado(t *testing.T) {
	uc := newCatalogUseCase(t)

	in := dto.ProductPayload{
		ProductDTO: dto.ProductDTO{Nombre: "Widget", Precio: dto.NewMoney(decimal.RequireFromString("9.99")), StockMinimo: 2, CategoriaID: 3},
		Stock:      5,
	}
	out, err := uc.CreateProduct(in)
	require.NoError(t, err)
	assert.Equal(t, 5, out.StockActual)
	assert.Equal(t, "Eléctricos", out.CategoriaNombre)
	assert.NotZero(t, out.ID)
	assert.NotEmpty(t, out.CreatedAt)
}

func TestCreateProduct_Validacion(t *testing.T) {
	uc := newCatalogUseCase(t)

	_, err := uc.CreateProduct(dto.ProductPayload{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "nombre")
	assert.Contains(t, err.Error(), "categoria_id")
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	uc := newCatalogUseCase(t)
	in := dto.ProductPayload{ProductDTO: dto.ProductDTO{Nombre: "X", CategoriaID: 1}}
	_, err := uc.UpdateProduct(999, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCategory(t *testing.T) {
	uc := newCatalogUseCase(t)

	out, err := uc.CreateCategory(dto.CreateCategoryRequest{Nombre: " Jardín ", Descripcion: "Exterior"})
	require.NoError(t, err)
	assert.Equal(t, "Jardín", out.Nombre)
	assert.Len(t, uc.ListCategories(), 4)

	_, err = uc.CreateCategory(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
