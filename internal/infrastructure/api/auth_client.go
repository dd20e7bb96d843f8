package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

var _ ports.AuthAPI = (*AuthClient)(nil)

// AuthClient endpoint público de login (sin bearer token).
type AuthClient struct {
	t *transport
}

// NewAuthClient construye el cliente de autenticación.
func NewAuthClient(cfg config.APIConfig, log *logger.Logger) *AuthClient {
	return &AuthClient{t: newTransport(cfg, nil, log)}
}

// Login POST /auth/login.
func (c *AuthClient) Login(ctx context.Context, in dto.LoginRequest) (*dto.Envelope[dto.LoginData], error) {
	return call[dto.LoginData](ctx, c.t, http.MethodPost, "/auth/login", in)
}
