package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// ReportGenerator genera el reporte de productos con stock bajo.
type ReportGenerator interface {
	LowStockReport(ctx context.Context, generatedAt time.Time, products []entity.Product) ([]byte, error)
}
