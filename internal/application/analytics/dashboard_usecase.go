// Package analytics contiene el caso de uso del dashboard del POS.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del dashboard: agregados del catálogo,
// distribución por categoría y ventas de hoy y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Los valores se
// recalculan en cada petición; no hay caché.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetInventoryMetrics        → TotalItems + TotalValue + LowStockItems
//  2. GetCategoryDistribution    → Categories
//  3. GetSalesMetrics(hoy)       → TodayRevenue + TodaySales
//  4. GetSalesMetrics(mes)       → MonthlyRevenue + MonthlySales
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999; mes en curso: día 1 hasta hoy.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type inventoryResult struct {
		metrics repository.InventoryMetricsResult
		err     error
	}
	type categoriesResult struct {
		categories []repository.CategoryCountResult
		err        error
	}
	type salesResult struct {
		metrics repository.SalesMetricsResult
		err     error
	}

	invCh := make(chan inventoryResult, 1)
	catCh := make(chan categoriesResult, 1)
	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetInventoryMetrics(ctx)
		invCh <- inventoryResult{m, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.GetCategoryDistribution(ctx)
		catCh <- categoriesResult{c, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- salesResult{m, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		monthCh <- salesResult{m, err}
	}()

	inv := <-invCh
	cats := <-catCh
	today := <-todayCh
	month := <-monthCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de inventario: %w", inv.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: distribución por categoría: %w", cats.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalItems:     inv.metrics.TotalItems,
		TotalValue:     inv.metrics.TotalValue.Round(2),
		LowStockItems:  inv.metrics.LowStockItems,
		Categories:     make([]dto.CategoryCountDTO, 0, len(cats.categories)),
		TodayRevenue:   today.metrics.Revenue.Round(2),
		TodaySales:     today.metrics.SaleCount,
		MonthlyRevenue: month.metrics.Revenue.Round(2),
		MonthlySales:   month.metrics.SaleCount,
	}
	for _, c := range cats.categories {
		summary.Categories = append(summary.Categories, dto.CategoryCountDTO{
			Name:     c.CategoryName,
			Quantity: c.Quantity,
		})
	}
	return summary, nil
}
