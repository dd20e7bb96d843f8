package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func TestMoney_LocaleES(t *testing.T) {
	assert.Contains(t, money(decimal.NewFromInt(25000)), "25.000")
	assert.True(t, strings.HasSuffix(money(decimal.RequireFromString("9.99")), "9,99"))
}

func TestMoney_SinPerdidaDePrecision(t *testing.T) {
	tests := map[string]string{
		"1234567890123456.78": "$1.234.567.890.123.456,78",
		"0.005":               "$0,01",
		"9.999":               "$10,00",
		"-1500.5":             "-$1.500,50",
		"0":                   "$0,00",
	}
	for in, want := range tests {
		assert.Equal(t, want, money(decimal.RequireFromString(in)), in)
	}
}

func TestRenderProducts_MarcaStockBajo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderProducts(&buf, []entity.Product{
		{ID: 1, Name: "Bajo", CurrentStock: 2, MinStock: 2},
		{ID: 2, Name: "Normal", CurrentStock: 9, MinStock: 2},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], lowStockLabel)
	assert.NotContains(t, lines[2], lowStockLabel)
}

func TestRenderProducts_Vacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderProducts(&buf, nil))
	assert.Contains(t, buf.String(), "No hay productos")
}

func TestStdinConfirmer(t *testing.T) {
	tests := map[string]bool{"s\n": true, "Sí\n": true, "yes\n": true, "n\n": false, "\n": false, "": false}
	for input, want := range tests {
		var out bytes.Buffer
		c := NewStdinConfirmer(bufioReader(input), &out)
		got, err := c.Confirm(context.Background(), "¿Continuar?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "entrada %q", input)
		assert.Contains(t, out.String(), "¿Continuar? [s/N]: ")
	}
}

func TestWriterNotifier_SeparaSalidas(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewWriterNotifier(&out, &errOut)
	n.Notify(ports.LevelInfo, "listo")
	n.Notify(ports.LevelError, "falló")
	assert.Equal(t, "listo\n", out.String())
	assert.Equal(t, "Error: falló\n", errOut.String())
}

func bufioReader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

func TestRequiresSession(t *testing.T) {
	root, _ := newRootCommand(Options{})
	root.InitDefaultHelpCmd()
	tests := map[string]bool{
		"login":            false,
		"help":             false,
		"logout":           true,
		"products list":    true,
		"report low-stock": true,
	}
	for path, want := range tests {
		cmd, _, err := root.Find(strings.Fields(path))
		require.NoError(t, err, path)
		assert.Equal(t, want, requiresSession(cmd), path)
	}
}

func TestReadSecret_TerminalSinEco(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close(); _ = w.Close() })

	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	a := &app{opts: Options{In: r, Out: &out}, in: bufio.NewReader(r)}
	got, err := a.readSecret("Contraseña: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, "Contraseña: \n", out.String())
	assert.NotContains(t, out.String(), "secret")
}

func TestReadSecret_EntradaNoTerminalLeeLinea(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("secret\n")
	a := &app{opts: Options{In: in, Out: &out}, in: bufio.NewReader(in)}
	got, err := a.readSecret("Contraseña: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}
