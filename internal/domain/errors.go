package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrValidation          = errors.New("validación fallida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("cuenta inactiva")
	ErrNotAuthenticated    = errors.New("sesión no iniciada")
	ErrOperationInProgress = errors.New("ya hay una operación en curso")
	ErrDeleteNotConfirmed  = errors.New("eliminación no confirmada")
	ErrFormClosed          = errors.New("no hay formulario abierto")
	ErrResponseTooLarge    = errors.New("respuesta demasiado grande")
)

// Mensajes genéricos mostrados al usuario.
const (
	MsgConnectivity = "Error de conexión. Verifica que el backend esté funcionando."
	MsgLoginFailed  = "Error al iniciar sesión"
	MsgTooLarge     = "La respuesta del servidor supera el tamaño permitido."
)

// APIError falla de negocio informada por el servidor: envelope con success=false
// o respuesta HTTP no-2xx. Message es legible y se muestra tal cual.
type APIError struct {
	Status  int // 0 si vino dentro de un envelope 2xx
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// Unauthorized indica si el servidor rechazó el token.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// TransportError la petición no obtuvo respuesta estructurada (red, DNS, JSON inválido).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError campos requeridos ausentes o fuera de rango. Es ErrValidation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation.Error(), e.Fields)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UserMessage devuelve el texto a mostrar al usuario para err.
// Los errores de negocio muestran el mensaje del servidor; la ausencia de
// envelope se reporta con el mensaje genérico de conectividad.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Campos requeridos o inválidos: %v", vErr.Fields)
	}
	if errors.Is(err, ErrResponseTooLarge) {
		return MsgTooLarge
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return MsgConnectivity
	}
	return err.Error()
}
