package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/pkg/config"
)

// annotationPublic marca los comandos que no exigen sesión.
const annotationPublic = "public"

// ReportedError error cuyo mensaje ya se mostró al usuario.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// reported marca como mostrado un error de negocio, transporte o validación que
// el workspace ya notificó.
func reported(err error) error {
	var (
		apiErr *domain.APIError
		tErr   *domain.TransportError
		vErr   *domain.ValidationError
	)
	if errors.As(err, &apiErr) || errors.As(err, &tErr) || errors.As(err, &vErr) {
		return &ReportedError{Err: err}
	}
	return err
}

// requiresSession false para login y para la ayuda y el completado de cobra.
func requiresSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationPublic] != "" {
			return false
		}
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}

// Execute ejecuta la línea de comandos args y libera el almacenamiento al terminar.
func Execute(ctx context.Context, opts Options, args []string) error {
	root, a := newRootCommand(opts)
	defer a.close()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCommand(opts Options) (*cobra.Command, *app) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.OpenStore == nil {
		opts.OpenStore = OpenStore
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &app{opts: opts, in: bufio.NewReader(opts.In)}
	var g globalFlags

	root := &cobra.Command{
		Use:           "inventario",
		Short:         "Cliente del Sistema de Inventarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.init(cmd.Context(), g); err != nil {
				return err
			}
			if requiresSession(cmd) && !a.session.IsAuthenticated(cmd.Context()) {
				return fmt.Errorf("%w: ejecuta 'inventario login'", domain.ErrNotAuthenticated)
			}
			return nil
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	root.PersistentFlags().StringVar(&g.apiURL, "api-url", "", "URL base de la API (sobrescribe API_BASE_URL)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "nivel de logs: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.ephemeral, "ephemeral", false, "no persistir la sesión (almacenamiento en memoria)")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newProductsCommand(a),
		newCategoriesCommand(a),
		newReportCommand(a),
	)
	return root, a
}
