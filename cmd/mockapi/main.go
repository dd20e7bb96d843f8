package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-client/internal/application/auth"
	"github.com/jhoicas/Inventario-client/internal/application/usecase"
	"github.com/jhoicas/Inventario-client/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Inventario-client/internal/interfaces/http"
	"github.com/jhoicas/Inventario-client/pkg/config"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando backend local")

	catalog := memory.NewCatalog()
	if err := memory.Seed(catalog, bcrypt.DefaultCost); err != nil {
		log.Fatal().Err(err).Msg("datos de ejemplo")
	}
	for user := range memory.SeedPasswords {
		log.Info().Str("username", user).Msg("usuario de prueba disponible")
	}

	authUC := auth.NewAuthUseCase(catalog, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(catalog)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("backend detenido")
}
