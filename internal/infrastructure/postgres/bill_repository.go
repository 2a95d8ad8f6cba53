package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste la cabecera de la factura. La restricción UNIQUE sobre
// bill_number es la autoridad final contra duplicados.
func (r *BillRepo) Create(bill *entity.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	query := `
		INSERT INTO bills (id, bill_number, customer_id, customer_name, subtotal, tax_amount, discount_amount, total_amount, payment_method, payment_status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.Number, nullIfEmpty(bill.CustomerID), bill.CustomerName,
		bill.Subtotal, bill.TaxAmount, bill.DiscountAmount, bill.TotalAmount,
		bill.PaymentMethod, bill.PaymentStatus, nullIfEmpty(bill.Notes), bill.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert bill: %w", domain.ErrDuplicateBillNumber)
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura.
func (r *BillRepo) CreateItem(item *entity.BillItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO bill_items (id, bill_id, position, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BillID, item.Position, nullIfEmpty(item.ProductID), item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura por ID.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `
		SELECT id, bill_number, customer_id, customer_name,
		       subtotal, tax_amount, discount_amount, total_amount,
		       payment_method, payment_status, notes, created_at
		FROM bills WHERE id = $1`
	var b entity.Bill
	var customerID, notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Number, &customerID, &b.CustomerName,
		&b.Subtotal, &b.TaxAmount, &b.DiscountAmount, &b.TotalAmount,
		&b.PaymentMethod, &b.PaymentStatus, &notes, &b.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	b.CustomerID = derefStr(customerID)
	b.Notes = derefStr(notes)
	return &b, nil
}

// GetItemsByBillID obtiene las líneas de una factura en el orden en que se
// vendieron (position).
func (r *BillRepo) GetItemsByBillID(billID string) ([]*entity.BillItem, error) {
	query := `
		SELECT id, bill_id, position, COALESCE(product_id::text, ''), product_name, quantity, unit_price, total_price
		FROM bill_items WHERE bill_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.Position, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List devuelve facturas ordenadas por fecha descendente, con paginación y
// rango de fechas opcional ([from, to), ambos o ninguno).
func (r *BillRepo) List(limit, offset int, from, to *time.Time) ([]*entity.Bill, error) {
	query := `
		SELECT id, bill_number, customer_id, customer_name,
		       subtotal, tax_amount, discount_amount, total_amount,
		       payment_method, payment_status, notes, created_at
		FROM bills`
	args := []any{}
	if from != nil && to != nil {
		query += ` WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		args = append(args, *from, *to, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		var customerID, notes *string
		if err := rows.Scan(
			&b.ID, &b.Number, &customerID, &b.CustomerName,
			&b.Subtotal, &b.TaxAmount, &b.DiscountAmount, &b.TotalAmount,
			&b.PaymentMethod, &b.PaymentStatus, &notes, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		b.CustomerID = derefStr(customerID)
		b.Notes = derefStr(notes)
		list = append(list, &b)
	}
	return list, rows.Err()
}
