package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Inventario-client/internal/application/workspace"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/jwt"
)

const lowStockLabel = "⚠ Stock Bajo"

var printer = message.NewPrinter(language.Spanish)

// money formatea un importe con separadores del locale es: 12.000,00.
// Trabaja sobre los dígitos del decimal; solo la parte entera pasa por el printer.
func money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	grouped := whole
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = printer.Sprintf("%v", number.Decimal(n))
	}
	return sign + "$" + grouped + decimalSep + frac
}

// separador decimal del locale del printer.
const decimalSep = ","

func integer(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

func status(p entity.Product) string {
	if p.IsLowStock() {
		return lowStockLabel
	}
	return "OK"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderProducts tabla de productos en el orden recibido.
func renderProducts(w io.Writer, products []entity.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No hay productos que coincidan.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tNOMBRE\tCATEGORÍA\tPRECIO\tSTOCK\tMÍN\tESTADO")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, dash(p.Code), p.Name, dash(p.CategoryName), money(p.UnitPrice),
			integer(p.CurrentStock), integer(p.MinStock), status(p))
	}
	return tw.Flush()
}

// renderProduct ficha de un producto.
func renderProduct(w io.Writer, p entity.Product) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%d\n", p.ID)
	fmt.Fprintf(tw, "Código:\t%s\n", dash(p.Code))
	fmt.Fprintf(tw, "Nombre:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Descripción:\t%s\n", dash(p.Description))
	fmt.Fprintf(tw, "Categoría:\t%s (%d)\n", dash(p.CategoryName), p.CategoryID)
	fmt.Fprintf(tw, "Precio:\t%s\n", money(p.UnitPrice))
	if p.PurchasePrice.Valid {
		fmt.Fprintf(tw, "Precio de compra:\t%s\n", money(p.PurchasePrice.Decimal))
	}
	fmt.Fprintf(tw, "Stock:\t%s (mínimo %s)\t%s\n", integer(p.CurrentStock), integer(p.MinStock), status(p))
	if p.Active != nil && !*p.Active {
		fmt.Fprintln(tw, "Activo:\tno")
	}
	if !p.UpdatedAt.IsZero() {
		fmt.Fprintf(tw, "Actualizado:\t%s\n", p.UpdatedAt.Local().Format("02/01/2006 15:04"))
	}
	return tw.Flush()
}

// renderCategories tabla de categorías.
func renderCategories(w io.Writer, categories []entity.Category) error {
	if len(categories) == 0 {
		_, err := fmt.Fprintln(w, "No hay categorías.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOMBRE\tDESCRIPCIÓN")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, dash(c.Description))
	}
	return tw.Flush()
}

// renderDashboard identidad, vigencia del token y cifras del inventario.
func renderDashboard(w io.Writer, id *entity.Identity, claims *jwt.Claims, s workspace.Summary, now time.Time) error {
	tw := newTable(w)
	if id != nil {
		fmt.Fprintf(tw, "Usuario:\t%s (%s)\n", id.DisplayName(), id.Username)
		fmt.Fprintf(tw, "Rol:\t%s\n", dash(id.Role))
		if id.Email != "" {
			fmt.Fprintf(tw, "Email:\t%s\n", id.Email)
		}
	}
	if exp := claims.ExpiresAtTime(); !exp.IsZero() {
		state := "vigente"
		if now.After(exp) {
			state = "expirado"
		}
		fmt.Fprintf(tw, "Token:\t%s hasta %s\n", state, exp.Local().Format("02/01/2006 15:04"))
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintf(tw, "Total de productos:\t%s\n", integer(s.TotalProducts))
	fmt.Fprintf(tw, "Productos con stock bajo:\t%s\n", integer(s.LowStock))
	fmt.Fprintf(tw, "Categorías:\t%s\n", integer(s.Categories))
	fmt.Fprintf(tw, "Valor del inventario:\t%s\n", money(s.InventoryValue))
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
