package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/billing-pos/internal/application/dto"
	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/money"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// maxNumberAttempts reintentos ante colisión del número de factura.
const maxNumberAttempts = 3

// BillUseCase crea facturas y descuenta el inventario en una sola transacción.
type BillUseCase struct {
	txRunner     TxRunner
	stock        StockConsumer
	numbers      NumberGenerator
	settingsRepo repository.SettingsRepository
	billRepo     repository.BillRepository // lecturas fuera de la tx
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(
	txRunner TxRunner,
	stock StockConsumer,
	numbers NumberGenerator,
	settingsRepo repository.SettingsRepository,
	billRepo repository.BillRepository,
) *BillUseCase {
	return &BillUseCase{
		txRunner:     txRunner,
		stock:        stock,
		numbers:      numbers,
		settingsRepo: settingsRepo,
		billRepo:     billRepo,
	}
}

// CreateBill valida el carrito, calcula totales con la tarifa de impuesto
// vigente, genera el número de factura y persiste cabecera, líneas y
// descuentos de stock como una sola unidad atómica.
//
// Ante domain.ErrDuplicateBillNumber la transacción completa se reintenta con
// un número nuevo, hasta maxNumberAttempts veces. Cualquier otro error aborta
// sin dejar filas parciales.
func (uc *BillUseCase) CreateBill(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	// Validación: falla antes de tocar la base de datos
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductName == "" {
			return nil, domain.ErrInvalidInput
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DiscountAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodCash
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}
	customerName := in.CustomerName
	if customerName == "" {
		customerName = entity.CustomerNameWalkIn
	}

	// Tarifa de impuesto vigente al instante de creación (no se cachea)
	taxRate := decimal.Zero
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("leer configuración del negocio: %w", err)
	}
	if settings != nil {
		taxRate = settings.TaxRate
	}

	lines := make([]money.Line, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, money.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}
	totals, err := money.ComputeTotals(lines, in.DiscountAmount, taxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var bill *entity.Bill
	var items []*entity.BillItem

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		bill = &entity.Bill{
			ID:             uuid.New().String(),
			Number:         uc.numbers.Next(),
			CustomerID:     in.CustomerID,
			CustomerName:   customerName,
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.Tax,
			DiscountAmount: totals.Discount,
			TotalAmount:    totals.Total,
			PaymentMethod:  method,
			PaymentStatus:  entity.PaymentStatusPaid,
			Notes:          in.Notes,
			CreatedAt:      now,
		}
		items = items[:0]

		err = uc.txRunner.RunBilling(ctx, func(
			billRepo repository.BillRepository,
			productRepo repository.ProductRepository,
		) error {
			if err := billRepo.Create(bill); err != nil {
				return err
			}
			for i, item := range in.Items {
				line := &entity.BillItem{
					ID:          uuid.New().String(),
					BillID:      bill.ID,
					Position:    i + 1,
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice,
					TotalPrice:  money.LineTotal(item.Quantity, item.UnitPrice),
				}
				if err := billRepo.CreateItem(line); err != nil {
					return err
				}
				items = append(items, line)
				// Ítems libres (sin producto) nunca tocan inventario
				if item.ProductID != "" {
					if err := uc.stock.ConsumeInTx(productRepo, item.ProductID, item.Quantity); err != nil {
						return err
					}
				}
			}
			return nil
		})
		if errors.Is(err, domain.ErrDuplicateBillNumber) {
			continue // número nuevo, transacción nueva
		}
		break
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateBillNumber) {
			return nil, fmt.Errorf("crear factura: %d intentos de número agotados: %w", maxNumberAttempts, err)
		}
		return nil, err
	}

	return uc.toResponse(bill, items), nil
}

// GetBill obtiene una factura por ID con sus líneas.
func (uc *BillUseCase) GetBill(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(bill, items), nil
}

// ListBills lista facturas con paginación y rango de fechas opcional.
func (uc *BillUseCase) ListBills(ctx context.Context, in dto.ListBillsRequest) ([]*dto.BillResponse, error) {
	in.DefaultPage()
	from, to, err := parseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	bills, err := uc.billRepo.List(in.Limit, in.Offset, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, uc.toResponse(b, nil))
	}
	return out, nil
}

// parseDateRange interpreta fechas YYYY-MM-DD; el fin de rango es exclusivo
// (día siguiente a las 00:00). Ambas vacías = sin filtro.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	if start == "" && end == "" {
		return nil, nil, nil
	}
	if start == "" || end == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	from, err := time.ParseInLocation("2006-01-02", start, time.Local)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	endDay, err := time.ParseInLocation("2006-01-02", end, time.Local)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}
	to := endDay.AddDate(0, 0, 1)
	return &from, &to, nil
}

func (uc *BillUseCase) toResponse(bill *entity.Bill, items []*entity.BillItem) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:             bill.ID,
		Number:         bill.Number,
		CustomerID:     bill.CustomerID,
		CustomerName:   bill.CustomerName,
		Subtotal:       bill.Subtotal,
		TaxAmount:      bill.TaxAmount,
		DiscountAmount: bill.DiscountAmount,
		TotalAmount:    bill.TotalAmount,
		PaymentMethod:  bill.PaymentMethod,
		PaymentStatus:  bill.PaymentStatus,
		Notes:          bill.Notes,
		CreatedAt:      bill.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.BillItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}
