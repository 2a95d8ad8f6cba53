package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. StockQuantity lo descuenta el
// motor de facturación; admite fracciones (kg, litros) y puede quedar negativo
// si la configuración lo permite.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    string
	Price         decimal.Decimal // precio de venta
	CostPrice     decimal.Decimal
	StockQuantity decimal.Decimal
	Barcode       string
	Unit          string // pcs, kg, lt...
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
