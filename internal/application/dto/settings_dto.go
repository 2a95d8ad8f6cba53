package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest body para PUT /api/settings.
type UpdateSettingsRequest struct {
	Name         string          `json:"name"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	TaxNumber    string          `json:"tax_number,omitempty"`
	Currency     string          `json:"currency,omitempty"`
	TaxRate      decimal.Decimal `json:"tax_rate"` // porcentaje: 19 = 19%
	BusinessType string          `json:"business_type,omitempty"`
}

// SettingsResponse configuración del negocio en respuestas.
type SettingsResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	TaxNumber    string          `json:"tax_number,omitempty"`
	Currency     string          `json:"currency"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	BusinessType string          `json:"business_type"`
}
