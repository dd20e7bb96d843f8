package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-client/pkg/jwt"
)

const secret = "test-secret"

func newUseCase(t *testing.T) (*AuthUseCase, *memory.Catalog) {
	t.Helper()
	c := memory.NewCatalog()
	_, err := c.AddUser(entity.Identity{Username: "admin", GivenName: "Ana", Role: entity.RoleAdmin}, "secret", bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthUseCase(c, JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}), c
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: " admin ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, "Ana", out.User.Nombre)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_Errores(t *testing.T) {
	uc, _ := newUseCase(t)

	tests := []struct {
		name string
		in   dto.LoginRequest
		want error
	}{
		{"usuario inexistente", dto.LoginRequest{Username: "nadie", Password: "x"}, domain.ErrUnauthorized},
		{"contraseña incorrecta", dto.LoginRequest{Username: "admin", Password: "mal"}, domain.ErrUnauthorized},
		{"campos vacíos", dto.LoginRequest{}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
