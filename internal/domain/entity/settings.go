package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessSettings configuración del negocio. Existe una sola fila activa;
// el motor de facturación la lee al momento de crear cada factura (TaxRate
// es porcentaje: 19 = 19%).
type BusinessSettings struct {
	ID           string
	Name         string
	Address      string
	Phone        string
	Email        string
	TaxNumber    string
	Currency     string // ISO 4217, por defecto USD
	TaxRate      decimal.Decimal
	BusinessType string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
