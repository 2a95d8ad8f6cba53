package dto

import "github.com/shopspring/decimal"

// CreateBillRequest body para POST /api/bills.
// CustomerID vacío = venta de mostrador; CustomerName vacío usa el nombre por defecto.
type CreateBillRequest struct {
	CustomerID     string            `json:"customer_id,omitempty"`
	CustomerName   string            `json:"customer_name,omitempty"`
	Items          []BillItemRequest `json:"items"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	PaymentMethod  string            `json:"payment_method,omitempty"` // cash|card|transfer|other; vacío = cash
	Notes          string            `json:"notes,omitempty"`
}

// BillItemRequest línea propuesta de factura. ProductID vacío = ítem libre
// (no referencia catálogo ni descuenta stock).
type BillItemRequest struct {
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// BillResponse resultado de crear una factura y cuerpo de GET /api/bills/:id.
type BillResponse struct {
	ID             string             `json:"id"`
	Number         string             `json:"bill_number"`
	CustomerID     string             `json:"customer_id,omitempty"`
	CustomerName   string             `json:"customer_name"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentStatus  string             `json:"payment_status"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      string             `json:"created_at"`
	Items          []BillItemResponse `json:"items,omitempty"`
}

// BillItemResponse línea de factura en respuestas.
type BillItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// ListBillsRequest query params para GET /api/bills.
type ListBillsRequest struct {
	PageRequest
	StartDate string `query:"start_date"` // YYYY-MM-DD, opcional
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, opcional
}
