package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

type fakeStockRepo struct {
	rows []*entity.CurrentStock
}

func (f *fakeStockRepo) Get(productID, stockpileID string) (*entity.CurrentStock, error) {
	return nil, nil
}

func (f *fakeStockRepo) GetForUpdate(productID, stockpileID string) (*entity.CurrentStock, error) {
	return nil, nil
}

func (f *fakeStockRepo) Upsert(stock *entity.CurrentStock) error { return nil }

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.CurrentStock, error) {
	return f.rows, nil
}

func (f *fakeStockRepo) ListByProduct(productID string) ([]*entity.CurrentStock, error) {
	return nil, nil
}

func (f *fakeStockRepo) DeleteAll() error { return nil }

type fakeMovementRepo struct {
	rows []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error { return nil }

func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return f.rows, nil
}

func (f *fakeMovementRepo) ExistsCancellation(movementID string) (bool, error) { return false, nil }

func (f *fakeMovementRepo) ListChronological() ([]*entity.StockMovement, error) { return f.rows, nil }

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error                { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)    { return nil, nil }
func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

type fakeStockpileRepo struct {
	stockpiles []*entity.Stockpile
}

func (f *fakeStockpileRepo) Create(s *entity.Stockpile) error                { return nil }
func (f *fakeStockpileRepo) GetByID(id string) (*entity.Stockpile, error)    { return nil, nil }
func (f *fakeStockpileRepo) GetByCode(code string) (*entity.Stockpile, error) { return nil, nil }
func (f *fakeStockpileRepo) Update(s *entity.Stockpile) error                { return nil }
func (f *fakeStockpileRepo) List(limit, offset int) ([]*entity.Stockpile, error) {
	return f.stockpiles, nil
}
func (f *fakeStockpileRepo) Delete(id string) error { return nil }

func newTestUseCase() *ReportUseCase {
	stockRepo := &fakeStockRepo{rows: []*entity.CurrentStock{
		{
			ProductID:      "p1",
			StockpileID:    "s1",
			Quantity:       decimal.NewFromInt(150),
			AverageCost:    decimal.NewFromInt(12),
			TotalValue:     decimal.NewFromInt(1800),
			LastMovementAt: time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
		},
	}}
	movementRepo := &fakeMovementRepo{rows: []*entity.StockMovement{
		{
			ID:            "m1",
			Type:          entity.MovementTypePRODUCTION,
			Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			ProductID:     "p1",
			ToStockpileID: "s1",
			Quantity:      decimal.NewFromInt(150),
			UnitCost:      decimal.NewFromInt(12),
			TotalCost:     decimal.NewFromInt(1800),
		},
		{
			ID:              "m2",
			Type:            entity.MovementTypeSALES,
			Date:            time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			ProductID:       "p1",
			FromStockpileID: "s1",
			Quantity:        decimal.NewFromInt(-40),
			UnitCost:        decimal.NewFromInt(12),
			TotalCost:       decimal.NewFromInt(-480),
			UnitPrice:       decimal.NewFromInt(25),
			TotalRevenue:    decimal.NewFromInt(1000),
			DocketNumber:    "G-0001",
		},
	}}
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Code: "GR-20", Name: "Gravilla 20mm"},
	}}
	stockpileRepo := &fakeStockpileRepo{stockpiles: []*entity.Stockpile{
		{ID: "s1", Code: "ACP-01", Name: "Acopio Norte"},
	}}
	return NewReportUseCase(stockRepo, movementRepo, productRepo, stockpileRepo)
}

func TestStockXLSX(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.StockXLSX()
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "producto", rows[0][0])
	assert.Equal(t, "GR-20 Gravilla 20mm", rows[1][0])
	assert.Equal(t, "Acopio Norte", rows[1][1])
	assert.Equal(t, "150", rows[1][2])
	assert.Equal(t, "12", rows[1][3])
	assert.Equal(t, "1800", rows[1][4])
}

func TestMovementsXLSX(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.MovementsXLSX(repository.MovementFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// fila de producción: sin precio ni ingreso
	assert.Equal(t, "PRODUCTION", rows[1][1])
	assert.Equal(t, "150", rows[1][5])

	// fila de venta: cantidad negativa, precio e ingreso presentes
	venta := rows[2]
	assert.Equal(t, "SALES", venta[1])
	assert.Equal(t, "-40", venta[5])
	assert.Equal(t, "25", venta[8])
	assert.Equal(t, "1000", venta[9])
	assert.Equal(t, "G-0001", venta[10])
}
