// Package api implementa los puertos AuthAPI e InventoryAPI sobre la API REST
// del sistema de inventarios. Usa net/http; cada llamada es un único intento,
// sin reintentos ni backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

const (
	maxResponseBytes = 4 << 20
	headerRequestID  = "X-Request-ID"
)

// transport base HTTP compartida por AuthClient y Client.
type transport struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenSource // nil para endpoints públicos
	log        *logger.Logger
}

func newTransport(cfg config.APIConfig, tokens ports.TokenSource, log *logger.Logger) *transport {
	return &transport{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// Timeout 0 = sin límite: aplica el default del transporte.
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
		log:        log.Named("api"),
	}
}

// do ejecuta la petición y decodifica la respuesta 2xx en out.
// Sin respuesta o con JSON ilegible devuelve *domain.TransportError;
// con status no-2xx devuelve *domain.APIError.
func (t *transport) do(ctx context.Context, method, path string, body any, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar %s: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear request %s: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(headerRequestID, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.tokens != nil {
		// Token leído en cada llamada: un logout de otro proceso se respeta aquí.
		if tok, ok := t.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Debug().Err(err).Str("request_id", reqID).Str("op", op).Msg("petición sin respuesta")
		if ctx.Err() != nil {
			return &domain.TransportError{Op: op, Err: ctx.Err()}
		}
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	if len(raw) > maxResponseBytes {
		t.log.Warn().Str("request_id", reqID).Str("op", op).Int("status", resp.StatusCode).Msg("respuesta descartada por tamaño")
		return &domain.TransportError{Op: op, Err: fmt.Errorf("%w: más de %d bytes", domain.ErrResponseTooLarge, maxResponseBytes)}
	}
	t.log.Debug().
		Str("request_id", reqID).
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("respuesta recibida")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("respuesta no es JSON válido: %w", err)}
	}
	return nil
}

// errorMessage toma el mensaje del envelope si el cuerpo lo trae; si no, el texto del status.
func errorMessage(status int, raw []byte) string {
	var env dto.Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return http.StatusText(status)
}

// call ejecuta la petición y devuelve el envelope tipado.
func call[T any](ctx context.Context, t *transport, method, path string, body any) (*dto.Envelope[T], error) {
	var env dto.Envelope[T]
	if err := t.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// mapEnvelope convierte los datos del envelope conservando success y message.
func mapEnvelope[A, B any](in *dto.Envelope[A], fn func(A) B) *dto.Envelope[B] {
	return &dto.Envelope[B]{Success: in.Success, Message: in.Message, Data: fn(in.Data)}
}
