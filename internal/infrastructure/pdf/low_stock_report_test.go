package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func TestLowStockReport_GeneraPDF(t *testing.T) {
	g := NewLowStockReport("Ferretería Central")
	products := []entity.Product{
		{ID: 1, Code: "P-001", Name: "Pintura blanca", CategoryName: "Pinturas", CurrentStock: 2, MinStock: 5, UnitPrice: decimal.NewFromInt(30000)},
		{ID: 2, Name: "Tornillo", CurrentStock: 0, MinStock: 0, UnitPrice: decimal.RequireFromString("0.5")},
	}

	out, err := g.LowStockReport(context.Background(), time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestLowStockReport_SinProductos(t *testing.T) {
	out, err := NewLowStockReport("").LowStockReport(context.Background(), time.Now(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestLowStockReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLowStockReport("").LowStockReport(ctx, time.Now(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatMoney(t *testing.T) {
	tests := map[string]string{
		"0":       "0,00",
		"9.99":    "9,99",
		"25000":   "25.000,00",
		"1000000": "1.000.000,00",
		"-1234.5": "-1.234,50",
		"123":     "123,00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}
