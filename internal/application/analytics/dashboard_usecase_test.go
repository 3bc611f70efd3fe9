package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/pos-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	inventory  repository.InventoryMetricsResult
	categories []repository.CategoryCountResult
	today      repository.SalesMetricsResult
	month      repository.SalesMetricsResult

	salesErr error
}

func (r *fakeAnalyticsRepo) GetInventoryMetrics(ctx context.Context) (repository.InventoryMetricsResult, error) {
	return r.inventory, nil
}

func (r *fakeAnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	return r.categories, nil
}

func (r *fakeAnalyticsRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (repository.SalesMetricsResult, error) {
	if r.salesErr != nil {
		return repository.SalesMetricsResult{}, r.salesErr
	}
	// mismo día = consulta de "hoy"; si no, la del mes
	if start.Day() == end.Day() && start.Month() == end.Month() {
		return r.today, nil
	}
	return r.month, nil
}

func TestGetSummary_CombinaLasCuatroConsultas(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		inventory: repository.InventoryMetricsResult{
			TotalItems:    42,
			TotalValue:    decimal.NewFromFloat(1234.567),
			LowStockItems: 3,
		},
		categories: []repository.CategoryCountResult{
			{CategoryName: "Tools", Quantity: 30},
			{CategoryName: "Uncategorized", Quantity: 12},
		},
		today: repository.SalesMetricsResult{Revenue: decimal.NewFromInt(150), SaleCount: 2},
		month: repository.SalesMetricsResult{Revenue: decimal.NewFromInt(900), SaleCount: 11},
	}
	uc := NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.TotalItems)
	assert.Equal(t, "1234.57", summary.TotalValue.StringFixed(2))
	assert.Equal(t, int64(3), summary.LowStockItems)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Tools", summary.Categories[0].Name)
	assert.Equal(t, int64(30), summary.Categories[0].Quantity)

	assert.True(t, summary.TodayRevenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(2), summary.TodaySales)
	assert.True(t, summary.MonthlyRevenue.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, int64(11), summary.MonthlySales)
}

func TestGetSummary_CatalogoVacioDevuelveCeros(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalItems)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.Categories)
}

func TestGetSummary_ErrorDeConsultaSePropaga(t *testing.T) {
	repo := &fakeAnalyticsRepo{salesErr: errors.New("conexión perdida")}
	uc := NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard")
}
