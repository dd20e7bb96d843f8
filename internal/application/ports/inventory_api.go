package ports

import (
	"context"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// AuthAPI puerto de salida para la autenticación contra la API remota.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.Envelope[dto.LoginData], error)
}

// InventoryAPI puerto de salida para productos y categorías.
// Un error significa que no hubo envelope utilizable (transporte o HTTP no-2xx);
// success=false llega como envelope sin error.
type InventoryAPI interface {
	ListProducts(ctx context.Context) (*dto.Envelope[[]entity.Product], error)
	GetProduct(ctx context.Context, id int64) (*dto.Envelope[entity.Product], error)
	CreateProduct(ctx context.Context, p entity.Product) (*dto.Envelope[entity.Product], error)
	UpdateProduct(ctx context.Context, id int64, p entity.Product) (*dto.Envelope[entity.Product], error)
	DeleteProduct(ctx context.Context, id int64) (*dto.Envelope[struct{}], error)

	ListCategories(ctx context.Context) (*dto.Envelope[[]entity.Category], error)
	CreateCategory(ctx context.Context, c entity.Category) (*dto.Envelope[entity.Category], error)
}

// TokenSource entrega el bearer token vigente. Se consulta en cada petición.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}
