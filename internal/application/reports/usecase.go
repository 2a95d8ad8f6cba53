// Package reports contiene los casos de uso de reportes de ventas:
// ventas diarias, ventas mensuales y estadísticas del dashboard.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/billing-pos/internal/application/dto"
	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

const dailyTopProducts = 10 // productos en el ranking del reporte diario

// ReportUseCase genera los reportes agregados sobre facturas persistidas.
// Solo lectura; delega todas las consultas en ReportRepository.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	now        func() time.Time // inyectable en tests
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, now: time.Now}
}

// DailySales agrega las ventas del día indicado (YYYY-MM-DD; vacío = hoy) y el
// top de productos por ingresos.
func (uc *ReportUseCase) DailySales(ctx context.Context, date string) (*dto.DailySalesResponse, error) {
	day := uc.now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		day = parsed
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats, err := uc.reportRepo.GetDailyStats(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte diario: estadísticas: %w", err)
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, dayStart, dayEnd, dailyTopProducts)
	if err != nil {
		return nil, fmt.Errorf("reporte diario: top productos: %w", err)
	}

	resp := &dto.DailySalesResponse{
		Date:        dayStart.Format("2006-01-02"),
		TotalBills:  stats.TotalBills,
		TotalSales:  stats.TotalSales.Round(2),
		TotalTax:    stats.TotalTax.Round(2),
		AverageBill: stats.AverageBill.Round(2),
		TopProducts: make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductName:   p.ProductName,
			TotalQuantity: p.TotalQuantity,
			TotalSales:    p.TotalSales.Round(2),
		})
	}
	return resp, nil
}

// MonthlySales agrega las ventas del mes indicado (YYYY-MM; vacío = mes en
// curso): desglose por día calendario más totales consolidados.
func (uc *ReportUseCase) MonthlySales(ctx context.Context, month string) (*dto.MonthlySalesResponse, error) {
	ref := uc.now()
	if month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		ref = parsed
	}
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	breakdown, err := uc.reportRepo.GetDailyBreakdown(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: desglose: %w", err)
	}
	totals, err := uc.reportRepo.GetMonthlyStats(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: totales: %w", err)
	}

	resp := &dto.MonthlySalesResponse{
		Month:      monthStart.Format("2006-01"),
		DailySales: make([]dto.DailySalesDTO, 0, len(breakdown)),
		Totals: dto.MonthlyTotalsDTO{
			TotalBills: totals.TotalBills,
			TotalSales: totals.TotalSales.Round(2),
			TotalTax:   totals.TotalTax.Round(2),
		},
	}
	for _, d := range breakdown {
		resp.DailySales = append(resp.DailySales, dto.DailySalesDTO{
			Date:       d.Date.Format("2006-01-02"),
			BillsCount: d.BillsCount,
			TotalSales: d.TotalSales.Round(2),
		})
	}
	return resp, nil
}

// DashboardStats construye los contadores de la pantalla inicial.
//
// Cuatro consultas en paralelo:
//  1. GetDailyStats(hoy)       → TodayBills + TodaySales
//  2. GetMonthlyStats(mes)     → MonthBills + MonthSales
//  3. CountActiveProducts      → TotalProducts
//  4. CountCustomers           → TotalCustomers
func (uc *ReportUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	todayEnd := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	type dailyResult struct {
		stats repository.DailyStatsResult
		err   error
	}
	type monthlyResult struct {
		stats repository.MonthlyStatsResult
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	todayCh := make(chan dailyResult, 1)
	monthCh := make(chan monthlyResult, 1)
	productsCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		stats, err := uc.reportRepo.GetDailyStats(ctx, todayStart, todayEnd)
		todayCh <- dailyResult{stats, err}
	}()
	go func() {
		stats, err := uc.reportRepo.GetMonthlyStats(ctx, monthStart, monthEnd)
		monthCh <- monthlyResult{stats, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountActiveProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()

	today := <-todayCh
	monthStats := <-monthCh
	products := <-productsCh
	customers := <-customersCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if monthStats.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", monthStats.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}

	return &dto.DashboardStatsResponse{
		TodayBills:     today.stats.TotalBills,
		TodaySales:     today.stats.TotalSales.Round(2),
		MonthBills:     monthStats.stats.TotalBills,
		MonthSales:     monthStats.stats.TotalSales.Round(2),
		TotalProducts:  products.n,
		TotalCustomers: customers.n,
	}, nil
}
