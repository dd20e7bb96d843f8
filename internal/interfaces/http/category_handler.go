package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List GET /api/categories.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", h.uc.ListCategories())
}

// Create POST /api/categories.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	out, err := h.uc.CreateCategory(in)
	if err != nil {
		return failFrom(c, err, "Categoría no encontrada")
	}
	return ok(c, fiber.StatusCreated, "Categoría creada", *out)
}
