package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/usecase"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

const msgProductNotFound = "Producto no encontrado"

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List GET /api/products.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", h.uc.ListProducts())
}

// GetByID GET /api/products/:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	out, err := h.uc.GetProduct(int64(id))
	if err != nil {
		return failFrom(c, err, msgProductNotFound)
	}
	return ok(c, fiber.StatusOK, "", *out)
}

// Create POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.CreateProduct(in)
	if err != nil {
		return failFrom(c, err, msgProductNotFound)
	}
	h.log.Info().Int64("product_id", out.ID).Str("by", GetUsername(c)).Msg("producto creado")
	return ok(c, fiber.StatusCreated, "Producto creado", *out)
}

// Update PUT /api/products/:id.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.UpdateProduct(int64(id), in)
	if err != nil {
		return failFrom(c, err, msgProductNotFound)
	}
	h.log.Info().Int64("product_id", out.ID).Str("by", GetUsername(c)).Msg("producto actualizado")
	return ok(c, fiber.StatusOK, "Producto actualizado", *out)
}

// Delete DELETE /api/products/:id (solo admin).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.uc.DeleteProduct(int64(id)); err != nil {
		return failFrom(c, err, msgProductNotFound)
	}
	h.log.Info().Int("product_id", id).Str("by", GetUsername(c)).Msg("producto eliminado")
	return ok[any](c, fiber.StatusOK, "Producto eliminado", nil)
}
