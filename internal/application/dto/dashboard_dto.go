package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Son reducciones puras sobre los stores; se recalculan en cada petición.
type DashboardSummaryDTO struct {
	// Catálogo
	TotalItems    int64           `json:"total_items"`
	TotalValue    decimal.Decimal `json:"total_value"` // Σ price * quantity
	LowStockItems int64           `json:"low_stock_items"`

	// Distribución de unidades por categoría (para el gráfico de torta)
	Categories []CategoryCountDTO `json:"categories"`

	// Ventas de hoy y del mes en curso
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	TodaySales     int64           `json:"today_sales"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	MonthlySales   int64           `json:"monthly_sales"`
}

// CategoryCountDTO unidades en stock de una categoría.
type CategoryCountDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}
