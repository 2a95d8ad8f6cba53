package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// reportRepoFake devuelve resultados fijos y captura los rangos consultados.
type reportRepoFake struct {
	daily     repository.DailyStatsResult
	top       []repository.TopProductResult
	breakdown []repository.DailyBreakdownResult
	monthly   repository.MonthlyStatsResult
	products  int
	customers int

	dailyRange   [2]time.Time
	monthlyRange [2]time.Time

	failCustomers bool
}

func (f *reportRepoFake) GetDailyStats(_ context.Context, from, to time.Time) (repository.DailyStatsResult, error) {
	f.dailyRange = [2]time.Time{from, to}
	return f.daily, nil
}

func (f *reportRepoFake) GetTopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.TopProductResult, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *reportRepoFake) GetDailyBreakdown(_ context.Context, _, _ time.Time) ([]repository.DailyBreakdownResult, error) {
	return f.breakdown, nil
}

func (f *reportRepoFake) GetMonthlyStats(_ context.Context, from, to time.Time) (repository.MonthlyStatsResult, error) {
	f.monthlyRange = [2]time.Time{from, to}
	return f.monthly, nil
}

func (f *reportRepoFake) CountActiveProducts(context.Context) (int, error) { return f.products, nil }

func (f *reportRepoFake) CountCustomers(context.Context) (int, error) {
	if f.failCustomers {
		return 0, errors.New("conexión perdida")
	}
	return f.customers, nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.September, 15, 14, 30, 0, 0, time.Local)
}

func TestDailySales(t *testing.T) {
	repo := &reportRepoFake{
		daily: repository.DailyStatsResult{
			TotalBills:  4,
			TotalSales:  decimal.NewFromInt(110),
			TotalTax:    decimal.NewFromInt(10),
			AverageBill: decimal.RequireFromString("27.50"),
		},
		top: []repository.TopProductResult{
			{ProductName: "Café molido 500g", TotalQuantity: decimal.NewFromInt(8), TotalSales: decimal.NewFromInt(80)},
		},
	}
	uc := &ReportUseCase{reportRepo: repo, now: fixedNow}

	t.Run("fecha explícita", func(t *testing.T) {
		out, err := uc.DailySales(context.Background(), "2026-09-01")
		require.NoError(t, err)

		assert.Equal(t, "2026-09-01", out.Date)
		assert.Equal(t, 4, out.TotalBills)
		require.Len(t, out.TopProducts, 1)
		assert.Equal(t, "Café molido 500g", out.TopProducts[0].ProductName)

		// Rango [00:00 del día, 00:00 del día siguiente)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), repo.dailyRange[0])
		assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), repo.dailyRange[1])
	})

	t.Run("sin fecha usa hoy", func(t *testing.T) {
		out, err := uc.DailySales(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", out.Date)
	})

	t.Run("fecha mal formada", func(t *testing.T) {
		_, err := uc.DailySales(context.Background(), "15/09/2026")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMonthlySales(t *testing.T) {
	repo := &reportRepoFake{
		breakdown: []repository.DailyBreakdownResult{
			{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), BillsCount: 2, TotalSales: decimal.NewFromInt(50)},
			{Date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local), BillsCount: 1, TotalSales: decimal.NewFromInt(30)},
		},
		monthly: repository.MonthlyStatsResult{
			TotalBills: 3,
			TotalSales: decimal.NewFromInt(80),
			TotalTax:   decimal.RequireFromString("7.27"),
		},
	}
	uc := &ReportUseCase{reportRepo: repo, now: fixedNow}

	out, err := uc.MonthlySales(context.Background(), "2026-09")
	require.NoError(t, err)

	assert.Equal(t, "2026-09", out.Month)
	assert.Equal(t, 3, out.Totals.TotalBills)
	require.Len(t, out.DailySales, 2)
	assert.Equal(t, "2026-09-01", out.DailySales[0].Date)
	assert.Equal(t, "2026-09-03", out.DailySales[1].Date)

	// Rango [día 1 del mes, día 1 del mes siguiente)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), repo.monthlyRange[0])
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), repo.monthlyRange[1])

	t.Run("mes mal formado", func(t *testing.T) {
		_, err := uc.MonthlySales(context.Background(), "septiembre")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("mes vacío usa el mes en curso", func(t *testing.T) {
		out, err := uc.MonthlySales(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "2026-09", out.Month)
	})
}

func TestDashboardStats(t *testing.T) {
	repo := &reportRepoFake{
		daily:     repository.DailyStatsResult{TotalBills: 2, TotalSales: decimal.NewFromInt(40)},
		monthly:   repository.MonthlyStatsResult{TotalBills: 20, TotalSales: decimal.NewFromInt(500)},
		products:  15,
		customers: 7,
	}
	uc := &ReportUseCase{reportRepo: repo, now: fixedNow}

	out, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TodayBills)
	assert.Equal(t, 20, out.MonthBills)
	assert.Equal(t, 15, out.TotalProducts)
	assert.Equal(t, 7, out.TotalCustomers)
	assert.True(t, decimal.NewFromInt(40).Equal(out.TodaySales))
	assert.True(t, decimal.NewFromInt(500).Equal(out.MonthSales))
}

func TestDashboardStats_ErrorEnUnaConsulta(t *testing.T) {
	repo := &reportRepoFake{failCustomers: true}
	uc := &ReportUseCase{reportRepo: repo, now: fixedNow}

	_, err := uc.DashboardStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conteo de clientes")
}
