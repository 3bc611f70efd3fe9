package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryMetricsResult agregados del catálogo para el dashboard.
type InventoryMetricsResult struct {
	TotalItems    int64
	TotalValue    decimal.Decimal // Σ price * quantity
	LowStockItems int64           // quantity <= min_stock_level
}

// CategoryCountResult cantidad de unidades en stock por categoría.
type CategoryCountResult struct {
	CategoryName string // "Uncategorized" si el artículo no tiene categoría
	Quantity     int64
}

// SalesMetricsResult ingresos y número de ventas en un rango de fechas.
type SalesMetricsResult struct {
	Revenue   decimal.Decimal
	SaleCount int64
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetInventoryMetrics devuelve los agregados del catálogo completo.
	// Usa COALESCE para devolver ceros con catálogo vacío.
	GetInventoryMetrics(ctx context.Context) (InventoryMetricsResult, error)

	// GetCategoryDistribution devuelve unidades en stock por categoría,
	// agrupando los artículos sin categoría bajo "Uncategorized".
	GetCategoryDistribution(ctx context.Context) ([]CategoryCountResult, error)

	// GetSalesMetrics devuelve ingresos y número de ventas en [start, end].
	GetSalesMetrics(ctx context.Context, start, end time.Time) (SalesMetricsResult, error)
}
