package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovementRepo) ExistsCancellation(movementID string) (bool, error) {
	for _, m := range f.movements {
		if m.Type == entity.MovementTypeCANCEL && m.Reference == movementID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMovementRepo) ListChronological() ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeStockRepo struct {
	rows map[string]*entity.CurrentStock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]*entity.CurrentStock)}
}

func stockKey(productID, stockpileID string) string { return productID + "|" + stockpileID }

func (f *fakeStockRepo) Get(productID, stockpileID string) (*entity.CurrentStock, error) {
	if cs, ok := f.rows[stockKey(productID, stockpileID)]; ok {
		cp := *cs
		return &cp, nil
	}
	return &entity.CurrentStock{ProductID: productID, StockpileID: stockpileID}, nil
}

func (f *fakeStockRepo) GetForUpdate(productID, stockpileID string) (*entity.CurrentStock, error) {
	return f.Get(productID, stockpileID)
}

func (f *fakeStockRepo) Upsert(cs *entity.CurrentStock) error {
	cp := *cs
	f.rows[stockKey(cs.ProductID, cs.StockpileID)] = &cp
	return nil
}

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.CurrentStock, error) {
	var out []*entity.CurrentStock
	for _, cs := range f.rows {
		out = append(out, cs)
	}
	return out, nil
}

func (f *fakeStockRepo) ListByProduct(productID string) ([]*entity.CurrentStock, error) {
	var out []*entity.CurrentStock
	for _, cs := range f.rows {
		if cs.ProductID == productID {
			out = append(out, cs)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) DeleteAll() error {
	f.rows = make(map[string]*entity.CurrentStock)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; la atomicidad
// real la aporta PostgreSQL y se cubre en el adaptador, no aquí.
type fakeTxRunner struct {
	mov   *fakeMovementRepo
	stock *fakeStockRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
) error) error {
	return fn(f.mov, f.stock)
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error        { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error              { return nil }
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                       { return nil }

type fakeStockpileRepo struct{ stockpiles map[string]*entity.Stockpile }

func (f *fakeStockpileRepo) Create(s *entity.Stockpile) error { f.stockpiles[s.ID] = s; return nil }
func (f *fakeStockpileRepo) GetByID(id string) (*entity.Stockpile, error) {
	return f.stockpiles[id], nil
}
func (f *fakeStockpileRepo) GetByCode(string) (*entity.Stockpile, error) { return nil, nil }
func (f *fakeStockpileRepo) Update(*entity.Stockpile) error              { return nil }
func (f *fakeStockpileRepo) List(int, int) ([]*entity.Stockpile, error)  { return nil, nil }
func (f *fakeStockpileRepo) Delete(string) error                         { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProduct   = "prod-gravilla-20"
	testStockpile = "acopio-01"
	testStockpile2 = "acopio-02"
	testUser      = "user-bascula"
)

type fixture struct {
	uc    *RegisterMovementUseCase
	mov   *fakeMovementRepo
	stock *fakeStockRepo
}

func newFixture() *fixture {
	mov := &fakeMovementRepo{}
	stock := newFakeStockRepo()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProduct: {ID: testProduct, Code: "GR-20", Name: "Gravilla 20mm"},
	}}
	stockpiles := &fakeStockpileRepo{stockpiles: map[string]*entity.Stockpile{
		testStockpile:  {ID: testStockpile, Code: "ACP-01"},
		testStockpile2: {ID: testStockpile2, Code: "ACP-02"},
	}}
	uc := NewRegisterMovementUseCase(&fakeTxRunner{mov: mov, stock: stock}, products, stockpiles)
	return &fixture{uc: uc, mov: mov, stock: stock}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func (fx *fixture) production(t *testing.T, qty, cost string) *entity.StockMovement {
	t.Helper()
	mov, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:        testUser,
		Type:          entity.MovementTypePRODUCTION,
		ProductID:     testProduct,
		ToStockpileID: testStockpile,
		Quantity:      dec(qty),
		UnitCost:      decPtr(cost),
	})
	require.NoError(t, err)
	return mov
}

func (fx *fixture) currentStock(t *testing.T) *entity.CurrentStock {
	t.Helper()
	cs, err := fx.stock.Get(testProduct, testStockpile)
	require.NoError(t, err)
	return cs
}

// assertInvariant verifica TotalValue == Quantity × AverageCost (tolerancia $0.01).
func assertInvariant(t *testing.T, cs *entity.CurrentStock) {
	t.Helper()
	expected := cs.Quantity.Mul(cs.AverageCost)
	diff := cs.TotalValue.Sub(expected).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")),
		"TotalValue %s difiere de Quantity×AverageCost %s", cs.TotalValue, expected)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del actualizador del libro
// ──────────────────────────────────────────────────────────────────────────────

// Primer movimiento sobre un par sin fila: la crea con el costo de entrada.
func TestRegisterMovement_ProduccionInicialCreaFila(t *testing.T) {
	fx := newFixture()
	mov := fx.production(t, "20", "8")

	assert.Equal(t, entity.MovementTypePRODUCTION, mov.Type)
	assert.True(t, mov.TotalCost.Equal(dec("160")))

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("20")))
	assert.True(t, cs.AverageCost.Equal(dec("8")))
	assert.True(t, cs.TotalValue.Equal(dec("160")))
	assertInvariant(t, cs)
}

// Caso de referencia del promedio ponderado: 100@10 + 50@16 => 150@12.
func TestRegisterMovement_ProduccionRecalculaPromedio(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")
	fx.production(t, "50", "16")

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("150")))
	assert.True(t, cs.AverageCost.Equal(dec("12")), "promedio %s", cs.AverageCost)
	assert.True(t, cs.TotalValue.Equal(dec("1800")))
	assertInvariant(t, cs)
}

// La venta descuenta cantidad sin mover el costo promedio; el registro sale
// valorado al promedio vigente, nunca al precio del caller.
func TestRegisterMovement_VentaPreservaCosto(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")
	fx.production(t, "50", "16") // promedio 12

	mov, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("40"),
		UnitPrice:       dec("25"),
		CustomerID:      "cust-1",
	})
	require.NoError(t, err)

	assert.True(t, mov.Quantity.Equal(dec("-40")))
	assert.True(t, mov.UnitCost.Equal(dec("12")), "la venta debe salir al promedio vigente")
	assert.True(t, mov.TotalCost.Equal(dec("-480")))
	assert.True(t, mov.TotalRevenue.Equal(dec("1000")))

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("110")))
	assert.True(t, cs.AverageCost.Equal(dec("12")))
	assert.True(t, cs.TotalValue.Equal(dec("1320")))
	assertInvariant(t, cs)
}

// Ajuste negativo: baja cantidad, promedio intacto.
func TestRegisterMovement_AjusteNegativoPreservaCosto(t *testing.T) {
	fx := newFixture()
	fx.production(t, "150", "12")

	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:      testUser,
		Type:        entity.MovementTypeADJUSTMENT,
		ProductID:   testProduct,
		StockpileID: testStockpile,
		Quantity:    dec("-5"),
	})
	require.NoError(t, err)

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("145")))
	assert.True(t, cs.AverageCost.Equal(dec("12")))
	assertInvariant(t, cs)
}

// Ajuste positivo con costo propio promedia igual que una producción.
func TestRegisterMovement_AjustePositivoConCostoPromedia(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")

	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:      testUser,
		Type:        entity.MovementTypeADJUSTMENT,
		ProductID:   testProduct,
		StockpileID: testStockpile,
		Quantity:    dec("50"),
		UnitCost:    decPtr("16"),
	})
	require.NoError(t, err)

	cs := fx.currentStock(t)
	assert.True(t, cs.AverageCost.Equal(dec("12")))
	assertInvariant(t, cs)
}

// Producción con costo cero: caso de negocio válido (material sin costo) que
// SÍ entra al promedio, diluyéndolo.
func TestRegisterMovement_ProduccionCostoCeroPromedia(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")
	fx.production(t, "100", "0")

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("200")))
	assert.True(t, cs.AverageCost.Equal(dec("5")), "promedio %s", cs.AverageCost)
	assertInvariant(t, cs)
}

// Venta mayor al saldo: ErrInsufficientStock y nada queda en el libro.
func TestRegisterMovement_VentaSinSaldoFalla(t *testing.T) {
	fx := newFixture()
	fx.production(t, "10", "10")
	before := len(fx.mov.movements)

	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("11"),
		UnitPrice:       dec("25"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, fx.mov.movements, before, "una venta rechazada no debe dejar registro")

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("10")), "el saldo no debe cambiar")
}

// Dos ventas contra el mismo saldo de 10: la segunda ya ve el saldo
// descontado y falla. La serialización entre transacciones concurrentes la
// da el SELECT FOR UPDATE del adaptador PostgreSQL.
func TestRegisterMovement_VentasSucesivasNoSobregiran(t *testing.T) {
	fx := newFixture()
	fx.production(t, "10", "10")

	sale := MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("6"),
		UnitPrice:       dec("20"),
	}
	_, err := fx.uc.RegisterMovement(context.Background(), sale)
	require.NoError(t, err)
	_, err = fx.uc.RegisterMovement(context.Background(), sale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("4")), "jamás debe quedar saldo negativo")
}

// Venta contra un par sin fila de stock: insuficiente, no un no-op silencioso.
func TestRegisterMovement_VentaSinFilaDeStockFalla(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("1"),
		UnitPrice:       dec("20"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// La demanda proyectada queda en el libro pero no toca CurrentStock.
func TestRegisterMovement_DemandaNoTocaStock(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")

	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:    testUser,
		Type:      entity.MovementTypeDEMAND,
		ProductID: testProduct,
		Quantity:  dec("500"),
	})
	require.NoError(t, err)

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("100")))
	demands, _ := fx.mov.List(repository.MovementFilter{Type: entity.MovementTypeDEMAND})
	assert.Len(t, demands, 1)
}

// Traslado: resta en origen, suma en destino al costo del origen, dos
// registros con el mismo TransactionID.
func TestRegisterMovement_TrasladoMueveAlCostoDeOrigen(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")

	out, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeTRANSFER,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		ToStockpileID:   testStockpile2,
		Quantity:        dec("30"),
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(dec("-30")))
	assert.True(t, out.UnitCost.Equal(dec("10")))

	origin := fx.currentStock(t)
	assert.True(t, origin.Quantity.Equal(dec("70")))
	dest, _ := fx.stock.Get(testProduct, testStockpile2)
	assert.True(t, dest.Quantity.Equal(dec("30")))
	assert.True(t, dest.AverageCost.Equal(dec("10")))
	assertInvariant(t, origin)
	assertInvariant(t, dest)

	transfers, _ := fx.mov.List(repository.MovementFilter{Type: entity.MovementTypeTRANSFER})
	require.Len(t, transfers, 2)
	assert.Equal(t, transfers[0].TransactionID, transfers[1].TransactionID)
}

// Traslado mayor al saldo de origen: falla completo, destino intacto.
func TestRegisterMovement_TrasladoSinSaldoFalla(t *testing.T) {
	fx := newFixture()
	fx.production(t, "10", "10")

	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeTRANSFER,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		ToStockpileID:   testStockpile2,
		Quantity:        dec("11"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	dest, _ := fx.stock.Get(testProduct, testStockpile2)
	assert.True(t, dest.Quantity.IsZero())
}

// Validaciones previas: tipo desconocido, cantidades inválidas, producto inexistente.
func TestRegisterMovement_Validaciones(t *testing.T) {
	fx := newFixture()

	cases := []struct {
		name  string
		input MovementInput
		want  error
	}{
		{"tipo desconocido", MovementInput{Type: "REPROCESS", ProductID: testProduct}, domain.ErrInvalidInput},
		{"producción sin costo", MovementInput{Type: entity.MovementTypePRODUCTION, ProductID: testProduct, ToStockpileID: testStockpile, Quantity: dec("5")}, domain.ErrInvalidInput},
		{"producción cantidad cero", MovementInput{Type: entity.MovementTypePRODUCTION, ProductID: testProduct, ToStockpileID: testStockpile, Quantity: decimal.Zero, UnitCost: decPtr("1")}, domain.ErrInvalidInput},
		{"venta cantidad negativa", MovementInput{Type: entity.MovementTypeSALES, ProductID: testProduct, FromStockpileID: testStockpile, Quantity: dec("-3")}, domain.ErrInvalidInput},
		{"ajuste cantidad cero", MovementInput{Type: entity.MovementTypeADJUSTMENT, ProductID: testProduct, StockpileID: testStockpile, Quantity: decimal.Zero}, domain.ErrInvalidInput},
		{"traslado mismo acopio", MovementInput{Type: entity.MovementTypeTRANSFER, ProductID: testProduct, FromStockpileID: testStockpile, ToStockpileID: testStockpile, Quantity: dec("5")}, domain.ErrInvalidInput},
		{"producto inexistente", MovementInput{Type: entity.MovementTypePRODUCTION, ProductID: "nope", ToStockpileID: testStockpile, Quantity: dec("5"), UnitCost: decPtr("1")}, domain.ErrNotFound},
		{"acopio inexistente", MovementInput{Type: entity.MovementTypePRODUCTION, ProductID: testProduct, ToStockpileID: "nope", Quantity: dec("5"), UnitCost: decPtr("1")}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.RegisterMovement(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de anulación y edición
// ──────────────────────────────────────────────────────────────────────────────

// Anular una venta repone el stock al costo con el que salió.
func TestCancelMovement_VentaReponeStock(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "12")
	sale, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("40"),
		UnitPrice:       dec("25"),
	})
	require.NoError(t, err)

	rev, err := fx.uc.CancelMovement(context.Background(), sale.ID, testUser, "guía devuelta")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeCANCEL, rev.Type)
	assert.Equal(t, sale.ID, rev.Reference)
	assert.True(t, rev.Quantity.Equal(dec("40")), "reverso de venta entra stock")

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("100")))
	assert.True(t, cs.AverageCost.Equal(dec("12")))
	assertInvariant(t, cs)
}

// Un movimiento solo se anula una vez; el original queda intacto en el libro.
func TestCancelMovement_DobleAnulacionFalla(t *testing.T) {
	fx := newFixture()
	prod := fx.production(t, "50", "10")

	_, err := fx.uc.CancelMovement(context.Background(), prod.ID, testUser, "")
	require.NoError(t, err)
	_, err = fx.uc.CancelMovement(context.Background(), prod.ID, testUser, "")
	assert.ErrorIs(t, err, domain.ErrMovementClosed)

	orig, _ := fx.mov.GetByID(prod.ID)
	require.NotNil(t, orig)
	assert.True(t, orig.Quantity.Equal(dec("50")), "el registro original nunca se muta")
}

// No se anulan registros de traslado ni anulaciones previas.
func TestCancelMovement_TiposNoAnulables(t *testing.T) {
	fx := newFixture()
	fx.production(t, "50", "10")
	out, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeTRANSFER,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		ToStockpileID:   testStockpile2,
		Quantity:        dec("10"),
	})
	require.NoError(t, err)

	_, err = fx.uc.CancelMovement(context.Background(), out.ID, testUser, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Editar una producción: anula la original y registra el reemplazo EDIT; el
// promedio termina como si la producción correcta hubiera entrado sola.
func TestEditMovement_CorrigeProduccion(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")
	wrong := fx.production(t, "50", "16") // debió ser 50 @ 13

	edited, err := fx.uc.EditMovement(context.Background(), wrong.ID, MovementInput{
		UserID:        testUser,
		Type:          entity.MovementTypePRODUCTION,
		ProductID:     testProduct,
		ToStockpileID: testStockpile,
		Quantity:      dec("50"),
		UnitCost:      decPtr("13"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeEDIT, edited.Type)
	assert.Equal(t, wrong.ID, edited.Reference)

	cs := fx.currentStock(t)
	assert.True(t, cs.Quantity.Equal(dec("150")))
	// (100×10 + 50×13) / 150 = 11
	assert.True(t, cs.AverageCost.Equal(dec("11")), "promedio %s", cs.AverageCost)
	assertInvariant(t, cs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reconstrucción de la proyección
// ──────────────────────────────────────────────────────────────────────────────

// Tras una mezcla de movimientos, borrar la proyección y reconstruirla desde
// el libro produce exactamente el mismo estado.
func TestRebuildCurrentStock_ReproduceElLibro(t *testing.T) {
	fx := newFixture()
	fx.production(t, "100", "10")
	fx.production(t, "50", "16")
	_, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeSALES,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		Quantity:        dec("40"),
		UnitPrice:       dec("25"),
	})
	require.NoError(t, err)
	_, err = fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:          testUser,
		Type:            entity.MovementTypeTRANSFER,
		ProductID:       testProduct,
		FromStockpileID: testStockpile,
		ToStockpileID:   testStockpile2,
		Quantity:        dec("30"),
	})
	require.NoError(t, err)

	before := fx.currentStock(t)
	beforeDest, _ := fx.stock.Get(testProduct, testStockpile2)

	n, err := fx.uc.RebuildCurrentStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	after := fx.currentStock(t)
	afterDest, _ := fx.stock.Get(testProduct, testStockpile2)
	assert.True(t, after.Quantity.Equal(before.Quantity))
	assert.True(t, after.AverageCost.Equal(before.AverageCost))
	assert.True(t, after.TotalValue.Equal(before.TotalValue))
	assert.True(t, afterDest.Quantity.Equal(beforeDest.Quantity))
	assert.True(t, afterDest.AverageCost.Equal(beforeDest.AverageCost))
	assertInvariant(t, after)
	assertInvariant(t, afterDest)
}

// Lecturas repetidas entre movimientos devuelven valores idénticos: la
// proyección se guarda en decimal fijo, sin deriva de lectura.
func TestCurrentStock_LecturaIdempotente(t *testing.T) {
	fx := newFixture()
	fx.production(t, "33.333", "7.77")

	first := fx.currentStock(t)
	for i := 0; i < 5; i++ {
		again := fx.currentStock(t)
		assert.True(t, again.Quantity.Equal(first.Quantity))
		assert.True(t, again.AverageCost.Equal(first.AverageCost))
		assert.True(t, again.TotalValue.Equal(first.TotalValue))
	}
}

// La referencia es texto libre del operador (orden de producción, remisión,
// vale de báscula); debe llegar tal cual al registro del libro, sin exigirle
// forma de identificador.
func TestRegisterMovement_ReferenciaTextoLibre(t *testing.T) {
	fx := newFixture()

	mov, err := fx.uc.RegisterMovement(context.Background(), MovementInput{
		UserID:        testUser,
		Type:          entity.MovementTypePRODUCTION,
		ProductID:     testProduct,
		ToStockpileID: testStockpile,
		Quantity:      dec("10"),
		UnitCost:      decPtr("5"),
		Reference:     "OP-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "OP-1234", mov.Reference)

	require.Len(t, fx.mov.movements, 1)
	assert.Equal(t, "OP-1234", fx.mov.movements[0].Reference)
}
