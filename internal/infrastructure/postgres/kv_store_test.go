package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

func TestRedactDSN(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/inv?sslmode=disable",
		redactDSN("postgres://app:secreta@db:5432/inv?sslmode=disable"))
}

func TestLookupIPv4_Literal(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

// Requiere una base real: RUN_PG_INTEGRATION=true DATABASE_URL=postgres://...
func TestKVStore_Integracion(t *testing.T) {
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("RUN_PG_INTEGRATION no está activo")
	}
	cfg, err := config.Load()
	require.NoError(t, err)

	ctx := context.Background()
	store, closeFn, err := Open(ctx, cfg.DB, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	const key = "test_key_integracion"
	t.Cleanup(func() { _ = store.Delete(ctx, key) })

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "uno"))
	require.NoError(t, store.Set(ctx, key, "dos"))
	v, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dos", v)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
