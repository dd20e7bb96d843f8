package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/application/workspace"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func newProductsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"productos"},
		Short:   "Gestión de productos",
	}
	cmd.AddCommand(
		newProductsListCommand(a),
		newProductsGetCommand(a),
		newProductsCreateCommand(a),
		newProductsUpdateCommand(a),
		newProductsDeleteCommand(a),
	)
	return cmd
}

func newProductsListCommand(a *app) *cobra.Command {
	var search, category string
	var lowOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := a.workspace(nil)
			if err := ws.Load(cmd.Context()); err != nil {
				return err
			}
			shown := ws.Filter(search, category)
			if lowOnly {
				low := shown[:0]
				for _, p := range shown {
					if p.IsLowStock() {
						low = append(low, p)
					}
				}
				shown = low
			}
			return renderProducts(a.opts.Out, shown)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "texto a buscar en nombre o descripción")
	cmd.Flags().StringVarP(&category, "category", "c", "", "id de categoría")
	cmd.Flags().BoolVar(&lowOnly, "low-stock", false, "solo productos con stock bajo")
	return cmd
}

func newProductsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Ver un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			env, err := a.client.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !env.Success {
				return &domain.APIError{Message: env.Message}
			}
			return renderProduct(a.opts.Out, env.Data)
		},
	}
}

// productFlags campos editables del formulario de producto.
type productFlags struct {
	code          string
	name          string
	description   string
	price         string
	purchasePrice string
	stock         int
	minStock      int
	category      int64
	image         string
}

func (f *productFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.code, "code", "", "código del producto")
	fs.StringVar(&f.name, "name", "", "nombre")
	fs.StringVar(&f.description, "description", "", "descripción")
	fs.StringVar(&f.price, "price", "", "precio de venta")
	fs.StringVar(&f.purchasePrice, "purchase-price", "", "precio de compra")
	fs.IntVar(&f.stock, "stock", 0, "stock actual")
	fs.IntVar(&f.minStock, "min-stock", 0, "stock mínimo")
	fs.Int64Var(&f.category, "category", 0, "id de categoría")
	fs.StringVar(&f.image, "image", "", "URL de la imagen")
}

// apply copia al borrador solo los flags indicados en la línea de comandos.
func (f *productFlags) apply(fs *pflag.FlagSet, p *entity.Product) error {
	if fs.Changed("code") {
		p.Code = f.code
	}
	if fs.Changed("name") {
		p.Name = f.name
	}
	if fs.Changed("description") {
		p.Description = f.description
	}
	if fs.Changed("price") {
		d, err := decimal.NewFromString(f.price)
		if err != nil {
			return fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, f.price)
		}
		p.UnitPrice = d
	}
	if fs.Changed("purchase-price") {
		d, err := decimal.NewFromString(f.purchasePrice)
		if err != nil {
			return fmt.Errorf("%w: precio de compra %q", domain.ErrInvalidInput, f.purchasePrice)
		}
		p.PurchasePrice = decimal.NewNullDecimal(d)
	}
	if fs.Changed("stock") {
		p.CurrentStock = f.stock
	}
	if fs.Changed("min-stock") {
		p.MinStock = f.minStock
	}
	if fs.Changed("category") {
		p.CategoryID = f.category
	}
	if fs.Changed("image") {
		p.Image = f.image
	}
	return nil
}

func newProductsCreateCommand(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un producto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := a.workspace(nil)
			ws.OpenCreate()
			var applyErr error
			if err := ws.UpdateDraft(func(p *entity.Product) { applyErr = f.apply(cmd.Flags(), p) }); err != nil {
				return err
			}
			if applyErr != nil {
				return applyErr
			}
			return reported(ws.Save(cmd.Context()))
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newProductsUpdateCommand(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar un producto (solo los campos indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ws := a.workspace(nil)
			p, err := loadProduct(cmd, ws, id)
			if err != nil {
				return err
			}
			ws.OpenEdit(p)
			var applyErr error
			if err := ws.UpdateDraft(func(p *entity.Product) { applyErr = f.apply(cmd.Flags(), p) }); err != nil {
				return err
			}
			if applyErr != nil {
				return applyErr
			}
			return reported(ws.Save(cmd.Context()))
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newProductsDeleteCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var confirm ports.Confirmer
			if yes {
				confirm = AlwaysConfirm
			}
			ws := a.workspace(confirm)
			p, err := loadProduct(cmd, ws, id)
			if err != nil {
				return err
			}
			err = ws.Delete(cmd.Context(), p)
			if errors.Is(err, domain.ErrDeleteNotConfirmed) {
				fmt.Fprintln(a.opts.Out, "Eliminación cancelada")
				return nil
			}
			return reported(err)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

// loadProduct carga el workspace y busca el producto id.
func loadProduct(cmd *cobra.Command, ws *workspace.Workspace, id int64) (entity.Product, error) {
	if err := ws.Load(cmd.Context()); err != nil {
		return entity.Product{}, err
	}
	p, ok := ws.Find(id)
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return p, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}
