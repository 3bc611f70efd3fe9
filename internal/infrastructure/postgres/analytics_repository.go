package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstock/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Recibe el pool
// directamente: estas consultas nunca participan en transacciones y el caso
// de uso las lanza en paralelo.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de lectura.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInventoryMetrics agregados del catálogo completo. COALESCE garantiza
// ceros con catálogo vacío en vez de NULL.
func (r *AnalyticsRepo) GetInventoryMetrics(ctx context.Context) (repository.InventoryMetricsResult, error) {
	var m repository.InventoryMetricsResult
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(price * quantity), 0),
		        COALESCE(COUNT(*) FILTER (WHERE quantity <= min_stock_level), 0)
		 FROM inventory_items
		 WHERE status = 'active'`,
	).Scan(&m.TotalItems, &m.TotalValue, &m.LowStockItems)
	if err != nil {
		return repository.InventoryMetricsResult{}, fmt.Errorf("inventory metrics: %w", err)
	}
	return m, nil
}

// GetCategoryDistribution unidades en stock por categoría. Artículos sin
// categoría se agrupan bajo "Uncategorized".
func (r *AnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT COALESCE(c.name, 'Uncategorized'), COALESCE(SUM(i.quantity), 0)
		 FROM inventory_items i
		 LEFT JOIN categories c ON c.id = i.category_id
		 WHERE i.status = 'active'
		 GROUP BY c.name
		 ORDER BY 2 DESC`)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryCountResult
	for rows.Next() {
		var c repository.CategoryCountResult
		if err := rows.Scan(&c.CategoryName, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan category distribution: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// salesMetricsQuery filtra por created_at: es la única columna de fecha de
// la tabla sales (sale_date pertenece a inventory_items).
const salesMetricsQuery = `SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
	 FROM sales
	 WHERE created_at BETWEEN $1 AND $2`

// GetSalesMetrics ingresos y cantidad de ventas en [start, end].
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (repository.SalesMetricsResult, error) {
	var m repository.SalesMetricsResult
	err := r.pool.QueryRow(ctx, salesMetricsQuery, start, end).Scan(&m.Revenue, &m.SaleCount)
	if err != nil {
		return repository.SalesMetricsResult{}, fmt.Errorf("sales metrics: %w", err)
	}
	return m, nil
}
