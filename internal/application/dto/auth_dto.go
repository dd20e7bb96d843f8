package dto

import "encoding/json"

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDTO usuario tal como lo devuelve el backend; también es el formato de user_data.
type UserDTO struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Nombre   string          `json:"nombre"`
	Apellido string          `json:"apellido"`
	Rol      string          `json:"rol"`
	Permisos json.RawMessage `json:"permisos,omitempty"`
}

// LoginData datos del envelope de login.
type LoginData struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
