package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// de facturación e inventario. Si fn retorna error se hace rollback completo:
// ni cabecera, ni líneas, ni descuentos de stock quedan persistidos.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// StockConsumer descuenta stock usando los repositorios del caller (misma
// transacción). Si retorna error (ej: ErrInsufficientStock, ErrProductNotFound)
// el caller debe hacer rollback.
type StockConsumer interface {
	ConsumeInTx(productRepo repository.ProductRepository, productID string, quantity decimal.Decimal) error
}

// NumberGenerator produce números de factura candidatos. La unicidad la
// garantiza el constraint de la tabla; ante colisión el motor pide otro número.
type NumberGenerator interface {
	Next() string
}

// ReceiptPDFGenerator genera la representación en PDF del recibo de una factura.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		bill *entity.Bill,
		settings *entity.BusinessSettings,
		items []*entity.BillItem,
	) ([]byte, error)
}
