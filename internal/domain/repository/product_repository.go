package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE)
	// para serializar descuentos de stock concurrentes. Solo dentro de una tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija la cantidad en stock (usada por el ledger de inventario
	// dentro de la misma transacción de la factura).
	UpdateStock(productID string, quantity decimal.Decimal) error
	// List devuelve solo productos activos, paginados.
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por nombre, descripción, SKU o código de barras.
	// Solo devuelve productos activos.
	Search(q string, limit int) ([]*entity.Product, error)
}
