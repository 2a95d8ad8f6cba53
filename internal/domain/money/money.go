// Package money implementa la aritmética monetaria de facturación (servicio de
// dominio). Todos los montos se redondean half-up a 2 decimales en cada
// frontera que se persiste: total de línea, subtotal, impuesto y total.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-pos/internal/domain"
)

// Places precisión decimal de los montos almacenados.
const Places = 2

// Line par (cantidad, precio unitario) de una línea de factura.
type Line struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Totals montos calculados de una factura.
// Invariante: Total = Subtotal - Discount + Tax.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Round2 redondea half-up a 2 decimales. decimal.Round redondea la mitad
// alejándose de cero, que para magnitudes no negativas equivale a half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// LineTotal = Round2(cantidad * precio unitario). Es el snapshot que se
// persiste en la línea de factura.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitPrice))
}

// ComputeTotals calcula los totales de la factura:
//
//	subtotal = Σ LineTotal_i
//	base     = subtotal - discount
//	tax      = Round2(base * taxRatePercent / 100)
//	total    = base + tax
//
// Lista vacía de líneas produce totales en cero sin error (el motor de
// facturación rechaza carritos vacíos antes de llegar aquí). Un descuento
// mayor al subtotal se acepta y produce base, impuesto y total negativos
// (comportamiento documentado del sistema). Descuento negativo es
// ErrInvalidInput.
func ComputeTotals(lines []Line, discount, taxRatePercent decimal.Decimal) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, domain.ErrInvalidInput
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l.Quantity, l.UnitPrice))
	}

	base := subtotal.Sub(discount)
	tax := Round2(base.Mul(taxRatePercent).Div(decimal.NewFromInt(100)))
	total := base.Add(tax)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}, nil
}
