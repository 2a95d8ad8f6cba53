package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodOther    = "other"
)

// Estados de pago de la factura.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// CustomerNameWalkIn nombre por defecto cuando la factura no tiene cliente registrado.
const CustomerNameWalkIn = "Walk-in Customer"

// ValidPaymentMethod indica si el método de pago pertenece al conjunto permitido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Bill representa la cabecera de una factura de venta. Inmutable después de creada:
// total_amount = subtotal - discount_amount + tax_amount (a 2 decimales).
type Bill struct {
	ID             string
	Number         string // único a nivel global, legible (BILL-<millis>-<seq>)
	CustomerID     string // vacío = venta de mostrador
	CustomerName   string // snapshot desnormalizado del nombre del cliente
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentMethod  string
	PaymentStatus  string
	Notes          string
	CreatedAt      time.Time
}
