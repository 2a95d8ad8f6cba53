package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// ReceiptUseCase genera el recibo en PDF de una factura persistida.
type ReceiptUseCase struct {
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	billRepo repository.BillRepository,
	settingsRepo repository.SettingsRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		billRepo:     billRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// DownloadReceiptPDF recupera la factura con sus líneas y la configuración del
// negocio, y genera el PDF del recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, billID string) (pdfBytes []byte, filename string, err error) {
	bill, err := uc.billRepo.GetByID(billID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener factura: %w", err)
	}
	if bill == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(billID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener configuración: %w", err)
	}
	if settings == nil {
		// Sin configuración aún: recibo con encabezado mínimo
		settings = &entity.BusinessSettings{Name: "My Business", Currency: "USD"}
	}

	pdf, err := uc.generator.GenerateReceiptPDF(ctx, bill, settings, items)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", bill.Number), nil
}
