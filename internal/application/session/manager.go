// Package session administra la identidad autenticada y el bearer token del cliente.
//
// El almacenamiento durable (repository.SessionStore) es la única autoridad del
// token: se lee en cada consulta, nunca se cachea en memoria. La identidad sí se
// mantiene en memoria para publicarla a los suscriptores.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
	"github.com/jhoicas/Inventario-client/pkg/jwt"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

var _ ports.TokenSource = (*Manager)(nil)

// LoginResult resultado de un intento de login que obtuvo respuesta del servidor.
type LoginResult struct {
	Success  bool
	Message  string
	Identity *entity.Identity
}

// Listener recibe la identidad actual; nil significa sin sesión.
type Listener func(*entity.Identity)

// Manager dueño de la sesión del cliente.
type Manager struct {
	store repository.SessionStore
	auth  ports.AuthAPI
	log   *logger.Logger

	pubMu   sync.Mutex // serializa publicaciones para que lleguen en orden
	mu      sync.Mutex
	current *entity.Identity
	subs    map[int]Listener
	nextID  int
}

// NewManager construye el manager y restaura user_data desde el almacenamiento.
// Un user_data corrupto se registra y se ignora.
func NewManager(ctx context.Context, store repository.SessionStore, auth ports.AuthAPI, log *logger.Logger) *Manager {
	m := &Manager{
		store: store,
		auth:  auth,
		log:   log.Named("session"),
		subs:  make(map[int]Listener),
	}
	m.restore(ctx)
	return m
}

func (m *Manager) restore(ctx context.Context) {
	raw, ok, err := m.store.Get(ctx, repository.KeyUserData)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer user_data")
		return
	}
	if !ok || raw == "" {
		return
	}
	var u dto.UserDTO
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.log.Warn().Err(err).Msg("user_data corrupto, se ignora")
		return
	}
	id := dto.ToIdentity(u)
	m.current = &id
	if !m.Session(ctx).Consistent() {
		m.log.Warn().Str("username", id.Username).Msg("usuario restaurado sin token")
	}
}

// Login envía las credenciales. Si la respuesta es exitosa persiste token e
// identidad y publica la identidad. Un rechazo del servidor (envelope con
// success=false o HTTP no-2xx con mensaje) devuelve LoginResult sin error; la
// falla de transporte devuelve el error.
func (m *Manager) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	env, err := m.auth.Login(ctx, dto.LoginRequest{Username: strings.TrimSpace(username), Password: password})
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			m.log.Info().Int("status", apiErr.Status).Str("username", username).Msg("login rechazado")
			return &LoginResult{Message: apiErr.Message}, nil
		}
		m.log.Error().Err(err).Str("username", username).Msg("error de login")
		return nil, fmt.Errorf("login: %w", err)
	}

	if !env.Success || env.Data.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = domain.MsgLoginFailed
		}
		m.log.Info().Str("username", username).Msg("login rechazado")
		return &LoginResult{Message: msg}, nil
	}

	id := dto.ToIdentity(env.Data.User)
	if err := m.persist(ctx, env.Data.Token, env.Data.User); err != nil {
		return nil, err
	}
	m.publish(&id)
	m.log.Info().Str("username", id.Username).Str("role", id.Role).Msg("login exitoso")
	return &LoginResult{Success: true, Message: env.Message, Identity: &id}, nil
}

// persist escribe user_data antes que auth_token: la presencia del token es la
// señal de autenticación y no debe quedar sin identidad asociada.
func (m *Manager) persist(ctx context.Context, token string, user dto.UserDTO) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("login: serializar usuario: %w", err)
	}
	if err := m.store.Set(ctx, repository.KeyUserData, string(raw)); err != nil {
		return fmt.Errorf("login: guardar user_data: %w", err)
	}
	if err := m.store.Set(ctx, repository.KeyAuthToken, token); err != nil {
		_ = m.store.Delete(ctx, repository.KeyUserData)
		return fmt.Errorf("login: guardar auth_token: %w", err)
	}
	return nil
}

// Logout borra token e identidad persistidos y publica nil. No llama al servidor.
func (m *Manager) Logout(ctx context.Context) error {
	errToken := m.store.Delete(ctx, repository.KeyAuthToken)
	errUser := m.store.Delete(ctx, repository.KeyUserData)
	m.publish(nil)
	if err := errors.Join(errToken, errUser); err != nil {
		m.log.Error().Err(err).Msg("logout incompleto")
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info().Msg("sesión cerrada")
	return nil
}

// IsAuthenticated true si hay token persistido. No valida expiración ni firma.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, ok := m.Token(ctx)
	return ok
}

// Token lee el token persistido. Única vía de acceso al token para el resto del cliente.
func (m *Manager) Token(ctx context.Context) (string, bool) {
	tok, ok, err := m.store.Get(ctx, repository.KeyAuthToken)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer auth_token")
		return "", false
	}
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// CurrentIdentity copia de la identidad publicada, o nil.
func (m *Manager) CurrentIdentity() *entity.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyIdentity(m.current)
}

// Session instantánea de usuario y token.
func (m *Manager) Session(ctx context.Context) entity.Session {
	tok, _ := m.Token(ctx)
	return entity.Session{User: m.CurrentIdentity(), Token: tok}
}

// Subscribe entrega la identidad actual de inmediato y luego cada cambio,
// hasta llamar a la función devuelta.
// El valor inicial se entrega bajo pubMu, así ninguna publicación concurrente
// puede adelantarse a él.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	current := copyIdentity(m.current)
	m.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// TokenClaims decodifica el JWT persistido sin verificar firma (solo informativo).
func (m *Manager) TokenClaims(ctx context.Context) (*jwt.Claims, error) {
	tok, ok := m.Token(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return jwt.Inspect(tok)
}

// publish fija la identidad actual y notifica fuera del lock de estado.
func (m *Manager) publish(id *entity.Identity) {
	m.pubMu.Lock()
	defer m.pubMu.Unlock()

	m.mu.Lock()
	m.current = copyIdentity(id)
	listeners := make([]Listener, 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(copyIdentity(id))
	}
}

func copyIdentity(id *entity.Identity) *entity.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
