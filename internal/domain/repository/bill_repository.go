package repository

import (
	"time"

	"github.com/jhoicas/billing-pos/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para facturas y sus líneas.
// Las facturas son inmutables: no hay Update ni Delete.
type BillRepository interface {
	// Create persiste la cabecera. Si el número ya existe retorna
	// domain.ErrDuplicateBillNumber (el motor reintenta con número nuevo).
	Create(bill *entity.Bill) error
	CreateItem(item *entity.BillItem) error
	GetByID(id string) (*entity.Bill, error)
	// GetItemsByBillID devuelve las líneas en orden de venta (Position).
	GetItemsByBillID(billID string) ([]*entity.BillItem, error)
	// List devuelve facturas ordenadas por fecha descendente. from/to en nil
	// significan sin filtro de rango.
	List(limit, offset int, from, to *time.Time) ([]*entity.Bill, error)
}
