package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"reporte"},
		Short:   "Reportes en PDF",
	}
	cmd.AddCommand(newLowStockReportCommand(a))
	return cmd
}

func newLowStockReportCommand(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Reporte de productos con stock bajo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := a.workspace(nil)
			if err := ws.Load(cmd.Context()); err != nil {
				return err
			}
			low := ws.LowStock()
			doc, err := a.reports.LowStockReport(cmd.Context(), a.opts.Now(), low)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("guardar reporte: %w", err)
			}
			fmt.Fprintf(a.opts.Out, "Reporte generado: %s (%d productos)\n", out, len(low))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "stock-bajo.pdf", "archivo de salida")
	return cmd
}
