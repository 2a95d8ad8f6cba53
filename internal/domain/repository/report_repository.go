package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyStatsResult resultado crudo del agregado de ventas de un día.
// Lo produce la DB; el use case lo convierte en DTO.
type DailyStatsResult struct {
	TotalBills  int
	TotalSales  decimal.Decimal
	TotalTax    decimal.Decimal
	AverageBill decimal.Decimal
}

// TopProductResult producto más vendido en un período (por ingresos).
type TopProductResult struct {
	ProductName   string
	TotalQuantity decimal.Decimal
	TotalSales    decimal.Decimal
}

// DailyBreakdownResult ventas de un día dentro del desglose mensual.
type DailyBreakdownResult struct {
	Date       time.Time
	BillsCount int
	TotalSales decimal.Decimal
}

// MonthlyStatsResult totales consolidados de un mes.
type MonthlyStatsResult struct {
	TotalBills int
	TotalSales decimal.Decimal
	TotalTax   decimal.Decimal
}

// DashboardStatsResult contadores para la pantalla inicial.
type DashboardStatsResult struct {
	TodayBills     int
	TodaySales     decimal.Decimal
	MonthBills     int
	MonthSales     decimal.Decimal
	TotalProducts  int
	TotalCustomers int
}

// ReportRepository define las consultas de solo lectura sobre facturas
// persistidas. Las implementaciones no modifican datos.
type ReportRepository interface {
	// GetDailyStats agrega las facturas del día [dayStart, dayEnd).
	// Usa COALESCE para devolver ceros si no hubo ventas.
	GetDailyStats(ctx context.Context, dayStart, dayEnd time.Time) (DailyStatsResult, error)

	// GetTopProducts devuelve los `limit` productos con más ingresos en el rango.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)

	// GetDailyBreakdown devuelve ventas por día calendario dentro del rango.
	GetDailyBreakdown(ctx context.Context, from, to time.Time) ([]DailyBreakdownResult, error)

	// GetMonthlyStats agrega las facturas del rango mensual.
	GetMonthlyStats(ctx context.Context, from, to time.Time) (MonthlyStatsResult, error)

	// CountActiveProducts / CountCustomers contadores para el dashboard.
	CountActiveProducts(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
}
