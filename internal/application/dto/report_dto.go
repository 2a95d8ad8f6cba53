package dto

import "github.com/shopspring/decimal"

// DailySalesResponse cuerpo de GET /api/reports/daily-sales.
type DailySalesResponse struct {
	Date        string            `json:"date"` // YYYY-MM-DD
	TotalBills  int               `json:"total_bills"`
	TotalSales  decimal.Decimal   `json:"total_sales"`
	TotalTax    decimal.Decimal   `json:"total_tax"`
	AverageBill decimal.Decimal   `json:"average_bill"`
	TopProducts []TopProductDTO   `json:"top_products"`
}

// TopProductDTO producto dentro del ranking de ventas.
type TopProductDTO struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}

// MonthlySalesResponse cuerpo de GET /api/reports/monthly-sales.
type MonthlySalesResponse struct {
	Month      string            `json:"month"` // YYYY-MM
	DailySales []DailySalesDTO   `json:"daily_sales"`
	Totals     MonthlyTotalsDTO  `json:"totals"`
}

// DailySalesDTO ventas de un día dentro del desglose mensual.
type DailySalesDTO struct {
	Date       string          `json:"date"`
	BillsCount int             `json:"bills_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// MonthlyTotalsDTO totales consolidados del mes.
type MonthlyTotalsDTO struct {
	TotalBills int             `json:"total_bills"`
	TotalSales decimal.Decimal `json:"total_sales"`
	TotalTax   decimal.Decimal `json:"total_tax"`
}

// DashboardStatsResponse cuerpo de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	TodayBills     int             `json:"today_bills"`
	TodaySales     decimal.Decimal `json:"today_sales"`
	MonthBills     int             `json:"month_bills"`
	MonthSales     decimal.Decimal `json:"month_sales"`
	TotalProducts  int             `json:"total_products"`
	TotalCustomers int             `json:"total_customers"`
}
