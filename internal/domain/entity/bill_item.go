package entity

import "github.com/shopspring/decimal"

// BillItem representa una línea de una factura. TotalPrice es un snapshot
// (quantity * unit_price al momento de la venta); cambios posteriores de precio
// en el catálogo no la afectan. ProductID vacío = ítem libre (no descuenta stock).
type BillItem struct {
	ID          string
	BillID      string
	Position    int // orden de la línea dentro de la factura, desde 1
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
