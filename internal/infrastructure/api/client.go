package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

var _ ports.InventoryAPI = (*Client)(nil)

// Client cliente autenticado de productos y categorías.
type Client struct {
	t *transport
}

// New construye el cliente. tokens se consulta en cada petición.
func New(cfg config.APIConfig, tokens ports.TokenSource, log *logger.Logger) *Client {
	return &Client{t: newTransport(cfg, tokens, log)}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProducts GET /products.
func (c *Client) ListProducts(ctx context.Context) (*dto.Envelope[[]entity.Product], error) {
	env, err := call[[]dto.ProductDTO](ctx, c.t, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}
	return mapEnvelope(env, toProducts), nil
}

// GetProduct GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int64) (*dto.Envelope[entity.Product], error) {
	env, err := call[dto.ProductDTO](ctx, c.t, http.MethodGet, productPath(id), nil)
	if err != nil {
		return nil, err
	}
	return mapEnvelope(env, dto.ToProduct), nil
}

// CreateProduct POST /products. El cuerpo duplica stock_actual en "stock".
func (c *Client) CreateProduct(ctx context.Context, p entity.Product) (*dto.Envelope[entity.Product], error) {
	env, err := call[dto.ProductDTO](ctx, c.t, http.MethodPost, "/products", productBody(p))
	if err != nil {
		return nil, err
	}
	return mapEnvelope(env, dto.ToProduct), nil
}

// UpdateProduct PUT /products/{id}. El cuerpo duplica stock_actual en "stock".
func (c *Client) UpdateProduct(ctx context.Context, id int64, p entity.Product) (*dto.Envelope[entity.Product], error) {
	env, err := call[dto.ProductDTO](ctx, c.t, http.MethodPut, productPath(id), productBody(p))
	if err != nil {
		return nil, err
	}
	return mapEnvelope(env, dto.ToProduct), nil
}

// DeleteProduct DELETE /products/{id}. Los datos de la respuesta se descartan.
func (c *Client) DeleteProduct(ctx context.Context, id int64) (*dto.Envelope[struct{}], error) {
	var env dto.Envelope[any]
	if err := c.t.do(ctx, http.MethodDelete, productPath(id), nil, &env); err != nil {
		return nil, err
	}
	return &dto.Envelope[struct{}]{Success: env.Success, Message: env.Message}, nil
}

// ── Categorías ────────────────────────────────────────────────────────────────

// ListCategories GET /categories. Acepta la lista en "data" o en el formato heredado "categories".
func (c *Client) ListCategories(ctx context.Context) (*dto.Envelope[[]entity.Category], error) {
	var legacy dto.CategoryListEnvelope
	if err := c.t.do(ctx, http.MethodGet, "/categories", nil, &legacy); err != nil {
		return nil, err
	}
	env := legacy.Normalize()
	return mapEnvelope(&env, toCategories), nil
}

// CreateCategory POST /categories.
func (c *Client) CreateCategory(ctx context.Context, cat entity.Category) (*dto.Envelope[entity.Category], error) {
	body := dto.CreateCategoryRequest{Nombre: cat.Name, Descripcion: cat.Description}
	env, err := call[dto.CategoryDTO](ctx, c.t, http.MethodPost, "/categories", body)
	if err != nil {
		return nil, err
	}
	return mapEnvelope(env, dto.ToCategory), nil
}

func productPath(id int64) string {
	return fmt.Sprintf("/products/%d", id)
}

// productBody omite id y campos calculados por el servidor.
func productBody(p entity.Product) dto.ProductPayload {
	d := dto.ProductFromEntity(p)
	d.ID = 0
	d.CategoriaNombre = ""
	d.CreatedAt = ""
	d.UpdatedAt = ""
	return dto.NewProductPayload(d)
}

func toProducts(list []dto.ProductDTO) []entity.Product {
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProduct(p))
	}
	return out
}

func toCategories(list []dto.CategoryDTO) []entity.Category {
	out := make([]entity.Category, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategory(c))
	}
	return out
}
