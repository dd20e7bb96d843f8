package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func seeded(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	require.NoError(t, Seed(c, bcrypt.MinCost))
	return c
}

func TestSeed_CargaDatos(t *testing.T) {
	c := seeded(t)
	assert.Len(t, c.ListCategories(), 3)

	products := c.ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Ferretería", products[0].CategoryName)
	require.NotNil(t, products[0].Active)
	assert.True(t, *products[0].Active)

	u, err := c.FindUserByUsername("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
}

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	c := seeded(t)
	_, err := c.CreateProduct(entity.Product{Name: "X", CategoryID: 99})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_CodigoDuplicado(t *testing.T) {
	c := seeded(t)
	_, err := c.CreateProduct(entity.Product{Name: "X", Code: "fer-001", CategoryID: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateProduct_ConservaCreacionYResuelveCategoria(t *testing.T) {
	c := seeded(t)
	before, err := c.GetProduct(1)
	require.NoError(t, err)

	p := *before
	p.CategoryID = 2
	p.CategoryName = "ignorado"
	p.CurrentStock = 1

	updated, err := c.UpdateProduct(p)
	require.NoError(t, err)
	assert.Equal(t, "Pinturas", updated.CategoryName)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 1, updated.CurrentStock)
}

func TestDeleteProduct(t *testing.T) {
	c := seeded(t)
	require.NoError(t, c.DeleteProduct(2))
	assert.ErrorIs(t, c.DeleteProduct(2), domain.ErrNotFound)
	_, err := c.GetProduct(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Los ids no se reutilizan.
	p, err := c.CreateProduct(entity.Product{Name: "Nuevo", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
}

func TestCreateCategory_NombreDuplicado(t *testing.T) {
	c := seeded(t)
	_, err := c.CreateCategory(entity.Category{Name: "pinturas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFindUserByUsername_NoExiste(t *testing.T) {
	c := NewCatalog()
	_, err := c.FindUserByUsername("nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
