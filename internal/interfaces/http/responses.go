package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
)

// ok responde con el envelope exitoso.
func ok[T any](c *fiber.Ctx, status int, message string, data T) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

// fail responde con el envelope de error.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Fail(message))
}

// failFrom traduce un error de dominio a status y mensaje.
func failFrom(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "Cuenta inactiva")
	default:
		return fail(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
}

// errorHandler envelope para errores no controlados (rutas inexistentes, panics recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Error interno del servidor"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status, message = fe.Code, fe.Message
	}
	return fail(c, status, message)
}
