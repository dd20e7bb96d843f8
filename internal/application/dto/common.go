package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Envelope contenedor uniforme de toda respuesta de la API.
// success=false lleva un Message legible para el usuario.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// OK construye un envelope exitoso.
func OK[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: data}
}

// Fail construye un envelope de error sin datos.
func Fail(message string) Envelope[json.RawMessage] {
	return Envelope[json.RawMessage]{Success: false, Message: message}
}

// Money importe decimal que viaja como número JSON (no como string).
type Money struct {
	decimal.Decimal
}

// NewMoney envuelve un decimal.
func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d} }

// MarshalJSON serializa sin comillas: 9.99 en lugar de "9.99".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}
