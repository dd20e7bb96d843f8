package repository

import "context"

// Claves del almacenamiento durable del cliente.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data" // Identity serializada en JSON
)

// SessionStore define el puerto del almacenamiento durable del cliente (DIP).
// Solo el Session Manager lee o escribe las claves de autenticación.
type SessionStore interface {
	// Get devuelve el valor y si existe. Cada llamada lee el estado actual del
	// almacén, de modo que cambios hechos por otro proceso se observan de inmediato.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
