package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-client/internal/domain"
)

func newLoginCommand(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Iniciar sesión",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationPublic: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if username == "" {
				if username, err = a.readLine("Usuario: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = a.readSecret("Contraseña: "); err != nil {
					return err
				}
			}

			res, err := a.session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if !res.Success {
				return &domain.APIError{Message: res.Message}
			}
			fmt.Fprintf(a.opts.Out, "Bienvenido, %s\n", res.Identity.DisplayName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pide si falta)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.opts.Out, "Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Aliases: []string{"dashboard"},
		Short:   "Usuario actual y resumen del inventario",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			ws := a.workspace(nil)
			if err := ws.Load(ctx); err != nil {
				return err
			}
			claims, err := a.session.TokenClaims(ctx)
			if err != nil && !errors.Is(err, domain.ErrNotAuthenticated) {
				a.log.Debug().Err(err).Msg("token sin claims legibles")
			}
			if err := renderDashboard(a.opts.Out, a.session.CurrentIdentity(), claims, ws.Summary(), a.opts.Now()); err != nil {
				return err
			}
			if low := ws.LowStock(); len(low) > 0 {
				fmt.Fprintf(a.opts.Out, "\n%s\n", lowStockLabel)
				return renderProducts(a.opts.Out, low)
			}
			return nil
		},
	}
}
