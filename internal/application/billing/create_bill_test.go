package billing_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-pos/internal/application/billing"
	"github.com/jhoicas/billing-pos/internal/application/dto"
	"github.com/jhoicas/billing-pos/internal/application/inventory"
	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: simulan PostgreSQL con semántica transaccional (el callback
// trabaja sobre una copia; solo se publica en commit).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	bills    map[string]*entity.Bill
	numbers  map[string]bool
	items    []*entity.BillItem
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		bills:    map[string]*entity.Bill{},
		numbers:  map[string]bool{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, b := range s.bills {
		cb := *b
		c.bills[id] = &cb
	}
	for n := range s.numbers {
		c.numbers[n] = true
	}
	for _, it := range s.items {
		ci := *it
		c.items = append(c.items, &ci)
	}
	return c
}

type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) RunBilling(_ context.Context, fn func(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx := r.s.clone()
	if err := fn(&memBillRepo{s: tx}, &memProductRepo{s: tx}); err != nil {
		return err // rollback: se descarta la copia
	}
	*r.s = *tx
	return nil
}

func (r *memTxRunner) Run(_ context.Context, fn func(productRepo repository.ProductRepository) error) error {
	tx := r.s.clone()
	if err := fn(&memProductRepo{s: tx}); err != nil {
		return err
	}
	*r.s = *tx
	return nil
}

type memBillRepo struct {
	s *memStore
}

func (r *memBillRepo) Create(bill *entity.Bill) error {
	if r.s.numbers[bill.Number] {
		return domain.ErrDuplicateBillNumber
	}
	b := *bill
	r.s.bills[bill.ID] = &b
	r.s.numbers[bill.Number] = true
	return nil
}

func (r *memBillRepo) CreateItem(item *entity.BillItem) error {
	it := *item
	r.s.items = append(r.s.items, &it)
	return nil
}

func (r *memBillRepo) GetByID(id string) (*entity.Bill, error) {
	b, ok := r.s.bills[id]
	if !ok {
		return nil, nil
	}
	cb := *b
	return &cb, nil
}

func (r *memBillRepo) GetItemsByBillID(billID string) ([]*entity.BillItem, error) {
	var out []*entity.BillItem
	for _, it := range r.s.items {
		if it.BillID == billID {
			ci := *it
			out = append(out, &ci)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memBillRepo) List(limit, offset int, from, to *time.Time) ([]*entity.Bill, error) {
	var out []*entity.Bill
	for _, b := range r.s.bills {
		if from != nil && to != nil {
			if b.CreatedAt.Before(*from) || !b.CreatedAt.Before(*to) {
				continue
			}
		}
		cb := *b
		out = append(out, &cb)
	}
	return out, nil
}

type memProductRepo struct {
	s *memStore
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.GetForUpdate(id)
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	r.s.products[productID].StockQuantity = quantity
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (r *memProductRepo) Search(q string, limit int) ([]*entity.Product, error) { return nil, nil }

type memSettingsRepo struct {
	settings *entity.BusinessSettings
}

func (r *memSettingsRepo) Get() (*entity.BusinessSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	cs := *r.settings
	return &cs, nil
}

func (r *memSettingsRepo) Upsert(s *entity.BusinessSettings) error {
	cs := *s
	r.settings = &cs
	return nil
}

// stubNumbers entrega números predefinidos en orden; repite el último.
type stubNumbers struct {
	nums []string
	i    int
}

func (s *stubNumbers) Next() string {
	if s.i < len(s.nums) {
		n := s.nums[s.i]
		s.i++
		return n
	}
	return s.nums[len(s.nums)-1]
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque común
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	store    *memStore
	settings *memSettingsRepo
	numbers  *stubNumbers
	uc       *billing.BillUseCase
}

func newFixture(t *testing.T, allowNegativeStock bool, taxRate string) *fixture {
	t.Helper()
	store := newMemStore()
	store.products["p1"] = &entity.Product{
		ID: "p1", SKU: "SKU-1", Name: "Café molido 500g",
		Price: dec("10.00"), StockQuantity: dec("10"), Unit: "pcs", IsActive: true,
	}
	store.products["p2"] = &entity.Product{
		ID: "p2", SKU: "SKU-2", Name: "Azúcar 1kg",
		Price: dec("5.00"), StockQuantity: dec("3"), Unit: "pcs", IsActive: true,
	}

	txRunner := &memTxRunner{s: store}
	settings := &memSettingsRepo{settings: &entity.BusinessSettings{
		Name: "Tienda Test", Currency: "USD", TaxRate: dec(taxRate),
	}}
	numbers := &stubNumbers{nums: []string{"BILL-1-0001", "BILL-1-0002", "BILL-1-0003"}}
	consumeUC := inventory.NewConsumeUseCase(txRunner, allowNegativeStock)

	return &fixture{
		store:    store,
		settings: settings,
		numbers:  numbers,
		uc:       billing.NewBillUseCase(txRunner, consumeUC, numbers, settings, &memBillRepo{s: store}),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBill_HappyPath(t *testing.T) {
	f := newFixture(t, true, "10")

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("2"), UnitPrice: dec("10.00")},
			{ProductID: "p2", ProductName: "Azúcar 1kg", Quantity: dec("1"), UnitPrice: dec("5.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "BILL-1-0001", resp.Number)
	assert.True(t, dec("25.00").Equal(resp.Subtotal), "subtotal %s", resp.Subtotal)
	assert.True(t, dec("2.50").Equal(resp.TaxAmount), "impuesto %s", resp.TaxAmount)
	assert.True(t, dec("27.50").Equal(resp.TotalAmount), "total %s", resp.TotalAmount)
	assert.Equal(t, entity.PaymentMethodCash, resp.PaymentMethod, "método por defecto")
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	assert.Equal(t, entity.CustomerNameWalkIn, resp.CustomerName, "venta de mostrador")
	require.Len(t, resp.Items, 2)
	assert.True(t, dec("20.00").Equal(resp.Items[0].TotalPrice))

	// Stock descontado en la misma transacción
	assert.True(t, dec("8").Equal(f.store.products["p1"].StockQuantity))
	assert.True(t, dec("2").Equal(f.store.products["p2"].StockQuantity))

	// Cabecera y líneas persistidas
	assert.Len(t, f.store.bills, 1)
	assert.Len(t, f.store.items, 2)
}

func TestCreateBill_ProductoRepetidoSumaDescuentos(t *testing.T) {
	f := newFixture(t, true, "0")

	// El mismo producto en dos líneas descuenta la suma de cantidades
	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("2"), UnitPrice: dec("10.00")},
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("3"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, dec("5").Equal(f.store.products["p1"].StockQuantity), "10 - (2+3)")
}

func TestCreateBill_ConservaOrdenDelCarrito(t *testing.T) {
	f := newFixture(t, true, "0")

	// El recibo muestra las líneas tal como se vendieron, no en orden de ID
	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p2", ProductName: "Azúcar 1kg", Quantity: dec("1"), UnitPrice: dec("5.00")},
			{ProductName: "Bolsa reutilizable", Quantity: dec("1"), UnitPrice: dec("0.50")},
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("1"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)

	wantOrder := []string{"Azúcar 1kg", "Bolsa reutilizable", "Café molido 500g"}
	require.Len(t, resp.Items, 3)
	for i, name := range wantOrder {
		assert.Equal(t, name, resp.Items[i].ProductName)
	}
	for i, it := range f.store.items {
		assert.Equal(t, i+1, it.Position, "posición correlativa desde 1")
	}

	// La relectura conserva el mismo orden
	got, err := f.uc.GetBill(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	for i, name := range wantOrder {
		assert.Equal(t, name, got.Items[i].ProductName)
	}
}

func TestCreateBill_DescuentoAntesDelImpuesto(t *testing.T) {
	f := newFixture(t, true, "10")

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("2"), UnitPrice: dec("10.00")},
			{ProductID: "p2", ProductName: "Azúcar 1kg", Quantity: dec("1"), UnitPrice: dec("5.00")},
		},
		DiscountAmount: dec("5.00"),
	})
	require.NoError(t, err)

	assert.True(t, dec("2.00").Equal(resp.TaxAmount), "impuesto %s", resp.TaxAmount)
	assert.True(t, dec("22.00").Equal(resp.TotalAmount), "total %s", resp.TotalAmount)
}

func TestCreateBill_ItemLibreNoTocaStock(t *testing.T) {
	f := newFixture(t, true, "0")

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductName: "Servicio de envío", Quantity: dec("1"), UnitPrice: dec("3.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("10").Equal(f.store.products["p1"].StockQuantity), "stock intacto")
	assert.True(t, dec("3").Equal(f.store.products["p2"].StockQuantity), "stock intacto")
}

func TestCreateBill_Validacion(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateBillRequest
	}{
		{"carrito vacío", dto.CreateBillRequest{}},
		{"cantidad cero", dto.CreateBillRequest{Items: []dto.BillItemRequest{
			{ProductName: "X", Quantity: dec("0"), UnitPrice: dec("1")},
		}}},
		{"cantidad negativa", dto.CreateBillRequest{Items: []dto.BillItemRequest{
			{ProductName: "X", Quantity: dec("-1"), UnitPrice: dec("1")},
		}}},
		{"precio negativo", dto.CreateBillRequest{Items: []dto.BillItemRequest{
			{ProductName: "X", Quantity: dec("1"), UnitPrice: dec("-1")},
		}}},
		{"nombre de producto vacío", dto.CreateBillRequest{Items: []dto.BillItemRequest{
			{Quantity: dec("1"), UnitPrice: dec("1")},
		}}},
		{"descuento negativo", dto.CreateBillRequest{
			Items:          []dto.BillItemRequest{{ProductName: "X", Quantity: dec("1"), UnitPrice: dec("1")}},
			DiscountAmount: dec("-1"),
		}},
		{"método de pago desconocido", dto.CreateBillRequest{
			Items:         []dto.BillItemRequest{{ProductName: "X", Quantity: dec("1"), UnitPrice: dec("1")}},
			PaymentMethod: "cheque",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, true, "10")
			_, err := f.uc.CreateBill(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, f.store.bills, "nada debe persistirse")
		})
	}
}

func TestCreateBill_ProductoInexistenteRevierteTodo(t *testing.T) {
	f := newFixture(t, true, "10")

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("2"), UnitPrice: dec("10.00")},
			{ProductID: "no-existe", ProductName: "Fantasma", Quantity: dec("1"), UnitPrice: dec("1.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	// Rollback completo: ni cabecera, ni líneas, ni el descuento de p1
	assert.Empty(t, f.store.bills)
	assert.Empty(t, f.store.items)
	assert.True(t, dec("10").Equal(f.store.products["p1"].StockQuantity))
}

func TestCreateBill_StockInsuficiente(t *testing.T) {
	t.Run("bloqueado cuando no se permite stock negativo", func(t *testing.T) {
		f := newFixture(t, false, "0")

		_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
			Items: []dto.BillItemRequest{
				{ProductID: "p2", ProductName: "Azúcar 1kg", Quantity: dec("5"), UnitPrice: dec("5.00")},
			},
		})
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Empty(t, f.store.bills)
		assert.True(t, dec("3").Equal(f.store.products["p2"].StockQuantity))
	})

	t.Run("permitido cuando se permite stock negativo", func(t *testing.T) {
		f := newFixture(t, true, "0")

		_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
			Items: []dto.BillItemRequest{
				{ProductID: "p2", ProductName: "Azúcar 1kg", Quantity: dec("5"), UnitPrice: dec("5.00")},
			},
		})
		require.NoError(t, err)
		assert.True(t, dec("-2").Equal(f.store.products["p2"].StockQuantity), "sobreventa registrada")
	})
}

func TestCreateBill_ReintentaNumeroDuplicado(t *testing.T) {
	f := newFixture(t, true, "0")
	// El primer número candidato ya fue usado por otra factura
	f.store.numbers["BILL-1-0001"] = true

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("1"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "BILL-1-0002", resp.Number, "debe usar el siguiente número")
	assert.True(t, dec("9").Equal(f.store.products["p1"].StockQuantity), "el descuento ocurre una sola vez")
	assert.Len(t, f.store.items, 1, "sin líneas duplicadas del intento fallido")
}

func TestCreateBill_AgotaReintentosDeNumero(t *testing.T) {
	f := newFixture(t, true, "0")
	f.numbers.nums = []string{"DUP-1"} // siempre el mismo número
	f.store.numbers["DUP-1"] = true

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("1"), UnitPrice: dec("10.00")},
		},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateBillNumber)
	assert.Empty(t, f.store.bills)
	assert.True(t, dec("10").Equal(f.store.products["p1"].StockQuantity))
}

func TestCreateBill_SinConfiguracionUsaImpuestoCero(t *testing.T) {
	f := newFixture(t, true, "19")
	f.settings.settings = nil // negocio aún sin configurar

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("1"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TaxAmount.IsZero())
	assert.True(t, dec("10.00").Equal(resp.TotalAmount))
}

func TestGetBill(t *testing.T) {
	f := newFixture(t, true, "10")

	created, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Juana Pérez",
		Items: []dto.BillItemRequest{
			{ProductID: "p1", ProductName: "Café molido 500g", Quantity: dec("2"), UnitPrice: dec("10.00")},
		},
	})
	require.NoError(t, err)

	got, err := f.uc.GetBill(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Number, got.Number)
	assert.Equal(t, "Juana Pérez", got.CustomerName)
	require.Len(t, got.Items, 1)

	_, err = f.uc.GetBill(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBills_RangoDeFechas(t *testing.T) {
	f := newFixture(t, true, "0")

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductName: "Algo", Quantity: dec("1"), UnitPrice: dec("1.00")},
		},
	})
	require.NoError(t, err)

	t.Run("sin filtro devuelve todo", func(t *testing.T) {
		out, err := f.uc.ListBills(context.Background(), dto.ListBillsRequest{})
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("solo una fecha es inválido", func(t *testing.T) {
		_, err := f.uc.ListBills(context.Background(), dto.ListBillsRequest{StartDate: "2026-09-01"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("fecha mal formada es inválida", func(t *testing.T) {
		_, err := f.uc.ListBills(context.Background(), dto.ListBillsRequest{
			StartDate: "01/09/2026", EndDate: "2026-09-02",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
