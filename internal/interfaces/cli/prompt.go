package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
)

var (
	_ ports.Confirmer = (*StdinConfirmer)(nil)
	_ ports.Notifier  = (*WriterNotifier)(nil)
)

// StdinConfirmer pregunta s/N por la entrada estándar.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer construye el confirmador.
func NewStdinConfirmer(in *bufio.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{in: in, out: out}
}

// Confirm muestra prompt y devuelve true solo ante una respuesta afirmativa.
// Fin de entrada sin respuesta equivale a no.
func (c *StdinConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "%s [s/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("leer confirmación: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AlwaysConfirm confirmador para --yes.
var AlwaysConfirm = ports.ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

// WriterNotifier escribe los avisos informativos en out y los errores en errOut.
type WriterNotifier struct {
	out    io.Writer
	errOut io.Writer
}

// NewWriterNotifier construye el notificador.
func NewWriterNotifier(out, errOut io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out, errOut: errOut}
}

// Notify implementa ports.Notifier.
func (n *WriterNotifier) Notify(level ports.Level, message string) {
	if level == ports.LevelError {
		fmt.Fprintln(n.errOut, "Error: "+message)
		return
	}
	fmt.Fprintln(n.out, message)
}
