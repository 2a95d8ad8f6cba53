package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU           string          `json:"sku,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	Unit          string          `json:"unit,omitempty"` // por defecto pcs
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	Barcode       string          `json:"barcode,omitempty"`
	Unit          string          `json:"unit"`
	IsActive      bool            `json:"is_active"`
}
