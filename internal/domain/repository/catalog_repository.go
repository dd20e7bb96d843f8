package repository

import "github.com/jhoicas/Inventario-client/internal/domain/entity"

// CatalogRepository define el puerto de persistencia del backend local (cmd/mockapi).
type CatalogRepository interface {
	ListProducts() []entity.Product
	GetProduct(id int64) (*entity.Product, error)
	CreateProduct(p entity.Product) (*entity.Product, error)
	UpdateProduct(p entity.Product) (*entity.Product, error)
	DeleteProduct(id int64) error

	ListCategories() []entity.Category
	CreateCategory(c entity.Category) (*entity.Category, error)

	FindUserByUsername(username string) (*entity.User, error)
}
