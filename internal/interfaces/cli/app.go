// Package cli expone el cliente de inventarios como comandos cobra.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/application/session"
	"github.com/jhoicas/Inventario-client/internal/application/workspace"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/storage"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// StoreOpener abre el almacenamiento durable de la sesión y devuelve su función de cierre.
type StoreOpener func(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error)

// Options dependencias externas del CLI; los ceros toman los valores del proceso.
type Options struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	LoadConfig func() (*config.Config, error)
	OpenStore  StoreOpener
	Now        func() time.Time
}

// app estado compartido por los comandos durante una ejecución.
type app struct {
	opts Options
	in   *bufio.Reader

	cfg       *config.Config
	log       *logger.Logger
	store     repository.SessionStore
	closeFn   func()
	session   *session.Manager
	client    *api.Client
	notifier  *WriterNotifier
	reports   ports.ReportGenerator
	confirmer ports.Confirmer
}

// flags globales.
type globalFlags struct {
	apiURL    string
	logLevel  string
	ephemeral bool
}

// init construye config, logger, almacenamiento y clientes.
func (a *app) init(ctx context.Context, g globalFlags) error {
	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return err
	}
	if g.apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(g.apiURL, "/")
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.ephemeral {
		cfg.Storage.Driver = config.StorageMemory
	}
	a.cfg = cfg

	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: a.opts.Err})

	store, closeFn, err := a.opts.OpenStore(ctx, cfg, a.log)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento %s: %w", cfg.Storage.Driver, err)
	}
	a.store, a.closeFn = store, closeFn

	a.session = session.NewManager(ctx, store, api.NewAuthClient(cfg.API, a.log), a.log)
	a.client = api.New(cfg.API, a.session, a.log)
	a.notifier = NewWriterNotifier(a.opts.Out, a.opts.Err)
	a.reports = pdf.NewLowStockReport(cfg.App.Name)
	a.confirmer = NewStdinConfirmer(a.in, a.opts.Out)
	return nil
}

func (a *app) close() {
	if a.closeFn != nil {
		a.closeFn()
		a.closeFn = nil
	}
}

// workspace nuevo workspace con el confirmador indicado (nil = el de stdin).
func (a *app) workspace(confirm ports.Confirmer) *workspace.Workspace {
	if confirm == nil {
		confirm = a.confirmer
	}
	return workspace.New(a.client, confirm, a.notifier, a.log)
}

// readLine lee una línea de la entrada, sin el salto final.
func (a *app) readLine(prompt string) (string, error) {
	fmt.Fprint(a.opts.Out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Lectura sin eco en terminales; reemplazables en tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// readSecret lee una contraseña sin eco cuando la entrada es una terminal;
// si no, la lee como una línea más.
func (a *app) readSecret(prompt string) (string, error) {
	f, ok := a.opts.In.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return a.readLine(prompt)
	}
	fmt.Fprint(a.opts.Out, prompt)
	secret, err := readPassword(int(f.Fd()))
	fmt.Fprintln(a.opts.Out)
	if err != nil {
		return "", fmt.Errorf("leer contraseña: %w", err)
	}
	return string(secret), nil
}

// OpenStore abre el almacenamiento según STORAGE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return storage.NewMemoryStore(), func() {}, nil
	case config.StoragePostgres:
		return postgres.Open(ctx, cfg.DB, log)
	default:
		s, err := storage.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", s.Path()).Msg("almacenamiento en archivo")
		return s, func() {}, nil
	}
}
