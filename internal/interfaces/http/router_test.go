package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/application/auth"
	"github.com/jhoicas/Inventario-client/internal/application/usecase"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-client/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-client/pkg/jwt"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventario-test"
	testExpMin    = 60
)

// envelope respuesta genérica para inspeccionar en los tests.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	catalog := memory.NewCatalog()
	require.NoError(t, memory.Seed(catalog, bcrypt.MinCost))
	return apphttp.NewApp("inventario-test", apphttp.RouterDeps{
		AuthUC:    auth.NewAuthUseCase(catalog, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		CatalogUC: usecase.NewCatalogUseCase(catalog),
		JWTSecret: testJWTSecret,
		Log:       logger.Nop(),
	})
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "tester", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza la petición y decodifica el envelope.
func do(t *testing.T, app *fiber.App, method, path, authHeader, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenYUsuario(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"secret"}`)

	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var data struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "admin", data.User["username"])
	assert.Equal(t, "admin", data.User["rol"])
	assert.NotContains(t, data.User, "password_hash")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"mal"}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Credenciales inválidas", env.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_RechazaSinToken(t *testing.T) {
	app := newTestApp(t)
	for _, header := range []string{"", "Bearer ", "Bearer null", "Basic abc", "Bearer token.invalido.aqui"} {
		status, env := do(t, app, http.MethodGet, "/api/products", header, "")
		assert.Equal(t, http.StatusUnauthorized, status, "header %q", header)
		assert.False(t, env.Success)
	}
}

func TestRequireRole_EmpleadoNoEliminaProductos(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodDelete, "/api/products/1", tokenForRole(t, "empleado"), "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "No tienes permisos para esta acción", env.Message)
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := newTestApp(t)
	status, _ := do(t, app, http.MethodPost, "/api/categories", tokenForRole(t, ""), `{"nombre":"X"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos y categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CRUD(t *testing.T) {
	app := newTestApp(t)
	admin := tokenForRole(t, "admin")

	status, env := do(t, app, http.MethodPost, "/api/products", admin,
		`{"nombre":"Widget","descripcion":"","precio":9.99,"stock":5,"stock_minimo":2,"categoria_id":3}`)
	require.Equal(t, http.StatusCreated, status, env.Message)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.EqualValues(t, 5, created["id"])
	assert.EqualValues(t, 5, created["stock_actual"], "acepta el campo heredado stock")
	assert.EqualValues(t, 9.99, created["precio"])
	assert.Equal(t, "Eléctricos", created["categoria_nombre"])

	status, env = do(t, app, http.MethodPut, "/api/products/5", admin,
		`{"nombre":"Widget v2","precio":10,"stock_actual":7,"stock":7,"stock_minimo":2,"categoria_id":1}`)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Contains(t, string(env.Data), `"categoria_nombre":"Ferretería"`)

	status, env = do(t, app, http.MethodGet, "/api/products/5", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"nombre":"Widget v2"`)

	status, env = do(t, app, http.MethodDelete, "/api/products/5", admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = do(t, app, http.MethodGet, "/api/products/5", admin, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Producto no encontrado", env.Message)
}

func TestProducts_ValidacionDelServidor(t *testing.T) {
	app := newTestApp(t)
	status, env := do(t, app, http.MethodPost, "/api/products", tokenForRole(t, "admin"), `{"precio":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "nombre")
}

func TestProducts_IDInvalido(t *testing.T) {
	app := newTestApp(t)
	status, _ := do(t, app, http.MethodGet, "/api/products/abc", tokenForRole(t, "admin"), "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCategories_ListarYCrear(t *testing.T) {
	app := newTestApp(t)
	admin := tokenForRole(t, "admin")

	status, env := do(t, app, http.MethodGet, "/api/categories", admin, "")
	require.Equal(t, http.StatusOK, status)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 3)

	status, env = do(t, app, http.MethodPost, "/api/categories", admin, `{"nombre":"Jardín","descripcion":"Exterior"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Categoría creada", env.Message)

	status, env = do(t, app, http.MethodPost, "/api/categories", admin, `{"nombre":"jardín"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}
