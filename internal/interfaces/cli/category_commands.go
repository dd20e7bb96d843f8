package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func newCategoriesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"categorias"},
		Short:   "Gestión de categorías",
	}
	cmd.AddCommand(newCategoriesListCommand(a), newCategoriesCreateCommand(a))
	return cmd
}

func newCategoriesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := a.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if !env.Success {
				return &domain.APIError{Message: env.Message}
			}
			return renderCategories(a.opts.Out, env.Data)
		},
	}
}

func newCategoriesCreateCommand(a *app) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear una categoría",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return &domain.ValidationError{Fields: []string{"nombre"}}
			}
			env, err := a.client.CreateCategory(cmd.Context(), entity.Category{Name: name, Description: description})
			if err != nil {
				return err
			}
			if !env.Success {
				return &domain.APIError{Message: env.Message}
			}
			fmt.Fprintf(a.opts.Out, "Categoría creada: %s (id %d)\n", env.Data.Name, env.Data.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre")
	cmd.Flags().StringVar(&description, "description", "", "descripción")
	return cmd
}
