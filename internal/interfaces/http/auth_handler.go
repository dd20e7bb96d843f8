package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-client/internal/application/auth"
	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login POST /api/auth/login. Credenciales inválidas: 401 con success=false.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Usuario y contraseña son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		h.log.Info().Err(err).Str("username", in.Username).Msg("login rechazado")
		return failFrom(c, err, "Credenciales inválidas")
	}
	h.log.Info().Str("username", out.User.Username).Msg("login exitoso")
	return ok(c, fiber.StatusOK, "Login exitoso", *out)
}
