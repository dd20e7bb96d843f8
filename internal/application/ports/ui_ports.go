package ports

import "context"

// Confirmer pide confirmación explícita al usuario y devuelve su respuesta.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) { return f(ctx, prompt) }

// Level severidad de una notificación al usuario.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notifier muestra un mensaje al usuario de forma síncrona.
type Notifier interface {
	Notify(level Level, message string)
}
