package http_test

import (
	"context"
	"net"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/application/ports/mocks"
	"github.com/jhoicas/Inventario-client/internal/application/session"
	"github.com/jhoicas/Inventario-client/internal/application/workspace"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// startServer levanta el backend local en un puerto libre y devuelve la URL base de la API.
func startServer(t *testing.T) string {
	t.Helper()
	app := newTestApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String() + "/api"
}

// Flujo completo del cliente contra el backend local: login, carga, alta,
// filtro, eliminación confirmada y logout.
func TestClienteContraBackendLocal(t *testing.T) {
	ctx := context.Background()
	cfg := config.APIConfig{BaseURL: startServer(t)}
	store := storage.NewMemoryStore()

	mgr := session.NewManager(ctx, store, api.NewAuthClient(cfg, logger.Nop()), logger.Nop())
	client := api.New(cfg, mgr, logger.Nop())

	// Sin sesión el servidor rechaza y el cliente lo reporta como error de negocio.
	_, err := client.ListProducts(ctx)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())

	res, err := mgr.Login(ctx, "admin", "mal")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Credenciales inválidas", res.Message)

	res, err = mgr.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	require.True(t, res.Success)
	claims, err := mgr.TokenClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	confirm := new(mocks.MockConfirmer)
	notify := new(mocks.MockNotifier)
	notify.On("Notify", ports.LevelInfo, mock.Anything)
	ws := workspace.New(client, confirm, notify, logger.Nop())

	require.NoError(t, ws.Load(ctx))
	assert.Len(t, ws.Products(), 4)
	assert.Len(t, ws.Categories(), 3)

	ws.OpenCreate()
	require.NoError(t, ws.UpdateDraft(func(p *entity.Product) {
		p.Name = "Widget"
		p.UnitPrice = decimal.RequireFromString("9.99")
		p.CurrentStock = 5
		p.MinStock = 2
		p.CategoryID = 3
	}))
	require.NoError(t, ws.Save(ctx))
	require.Len(t, ws.Products(), 5)

	shown := ws.Filter("widget", "3")
	require.Len(t, shown, 1)
	widget := shown[0]
	assert.Equal(t, "Eléctricos", widget.CategoryName)
	assert.Equal(t, 5, widget.CurrentStock)
	assert.True(t, decimal.RequireFromString("9.99").Equal(widget.UnitPrice))

	confirm.On("Confirm", mock.Anything, workspace.DeletePrompt(widget)).Return(true, nil).Once()
	require.NoError(t, ws.Delete(ctx, widget))
	assert.Len(t, ws.Products(), 4)

	require.NoError(t, mgr.Logout(ctx))
	_, err = client.ListProducts(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
}
