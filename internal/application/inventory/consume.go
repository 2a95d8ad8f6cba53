package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// repositorio de productos atado a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// ConsumeUseCase aplica consumos de stock (venta de productos) con bloqueo de
// fila. AllowNegativeStock=true reproduce el comportamiento histórico: el stock
// puede quedar negativo. En false, un consumo sin stock suficiente retorna
// domain.ErrInsufficientStock y el caller revierte la transacción.
type ConsumeUseCase struct {
	txRunner           TxRunner
	allowNegativeStock bool
}

// NewConsumeUseCase construye el caso de uso.
func NewConsumeUseCase(txRunner TxRunner, allowNegativeStock bool) *ConsumeUseCase {
	return &ConsumeUseCase{txRunner: txRunner, allowNegativeStock: allowNegativeStock}
}

// ConsumeInTx descuenta `quantity` del stock del producto usando el repositorio
// del caller (misma transacción). Bloquea la fila (SELECT FOR UPDATE) para
// serializar descuentos concurrentes sobre el mismo producto.
// Implementa billing.StockConsumer.
func (uc *ConsumeUseCase) ConsumeInTx(
	productRepo repository.ProductRepository,
	productID string,
	quantity decimal.Decimal,
) error {
	if productID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	product, err := productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	newQty := product.StockQuantity.Sub(quantity)
	if !uc.allowNegativeStock && newQty.IsNegative() {
		return domain.ErrInsufficientStock
	}
	return productRepo.UpdateStock(productID, newQty)
}

// Consume descuenta stock en su propia transacción (ajustes directos, mermas).
func (uc *ConsumeUseCase) Consume(ctx context.Context, productID string, quantity decimal.Decimal) error {
	return uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		return uc.ConsumeInTx(productRepo, productID, quantity)
	})
}
