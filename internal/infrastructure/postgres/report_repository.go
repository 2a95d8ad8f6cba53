package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre facturas persistidas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetDailyStats agrega las facturas del día [dayStart, dayEnd).
// Usa COALESCE para devolver ceros si no hubo ventas.
func (r *ReportRepo) GetDailyStats(ctx context.Context, dayStart, dayEnd time.Time) (repository.DailyStatsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                              AS total_bills,
	    COALESCE(SUM(total_amount), 0)        AS total_sales,
	    COALESCE(SUM(tax_amount),   0)        AS total_tax,
	    COALESCE(ROUND(AVG(total_amount), 2), 0) AS average_bill
	FROM bills
	WHERE created_at >= $1 AND created_at < $2`

	var res repository.DailyStatsResult
	err := r.pool.QueryRow(ctx, query, dayStart, dayEnd).
		Scan(&res.TotalBills, &res.TotalSales, &res.TotalTax, &res.AverageBill)
	if err != nil {
		return repository.DailyStatsResult{}, fmt.Errorf("reports.GetDailyStats: %w", err)
	}
	return res, nil
}

// GetTopProducts devuelve los `limit` productos con más ingresos en el rango.
// Agrupa por nombre de producto (snapshot en la línea), así los ítems libres
// también cuentan.
func (r *ReportRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    bi.product_name,
	    SUM(bi.quantity)    AS total_quantity,
	    SUM(bi.total_price) AS total_sales
	FROM bill_items bi
	JOIN bills b ON b.id = bi.bill_id
	WHERE b.created_at >= $1 AND b.created_at < $2
	GROUP BY bi.product_name
	ORDER BY total_sales DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductName, &row.TotalQuantity, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetDailyBreakdown devuelve ventas por día calendario dentro del rango.
// Los días sin ventas no aparecen en el resultado.
func (r *ReportRepo) GetDailyBreakdown(ctx context.Context, from, to time.Time) ([]repository.DailyBreakdownResult, error) {
	const query = `
	SELECT
	    DATE(created_at)               AS day,
	    COUNT(*)                       AS bills_count,
	    COALESCE(SUM(total_amount), 0) AS total_sales
	FROM bills
	WHERE created_at >= $1 AND created_at < $2
	GROUP BY DATE(created_at)
	ORDER BY day`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDailyBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyBreakdownResult
	for rows.Next() {
		var row repository.DailyBreakdownResult
		if err := rows.Scan(&row.Date, &row.BillsCount, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("reports.GetDailyBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlyStats agrega las facturas del rango mensual [from, to).
func (r *ReportRepo) GetMonthlyStats(ctx context.Context, from, to time.Time) (repository.MonthlyStatsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                       AS total_bills,
	    COALESCE(SUM(total_amount), 0) AS total_sales,
	    COALESCE(SUM(tax_amount),   0) AS total_tax
	FROM bills
	WHERE created_at >= $1 AND created_at < $2`

	var res repository.MonthlyStatsResult
	err := r.pool.QueryRow(ctx, query, from, to).
		Scan(&res.TotalBills, &res.TotalSales, &res.TotalTax)
	if err != nil {
		return repository.MonthlyStatsResult{}, fmt.Errorf("reports.GetMonthlyStats: %w", err)
	}
	return res, nil
}

// CountActiveProducts cuenta los productos activos del catálogo.
func (r *ReportRepo) CountActiveProducts(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CountActiveProducts: %w", err)
	}
	return count, nil
}

// CountCustomers cuenta los clientes registrados.
func (r *ReportRepo) CountCustomers(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CountCustomers: %w", err)
	}
	return count, nil
}
