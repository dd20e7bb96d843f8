package entity

import (
	"encoding/json"
	"strings"
)

// Roles conocidos del backend.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// Identity usuario autenticado devuelto por el login.
// Permissions se conserva sin interpretar: el backend no fija su forma.
type Identity struct {
	ID          int64
	Username    string
	Email       string
	GivenName   string
	FamilyName  string
	Role        string
	Permissions json.RawMessage
}

// DisplayName nombre completo, o el username si no hay nombre.
func (i Identity) DisplayName() string {
	full := strings.TrimSpace(i.GivenName + " " + i.FamilyName)
	if full == "" {
		return i.Username
	}
	return full
}
