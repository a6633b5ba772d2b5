package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
)

// stubRow respuesta programada para QueryRow.
type stubRow struct {
	err   error
	stock *entity.CurrentStock
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.stock.ProductID
	*(dest[1].(*string)) = r.stock.StockpileID
	*(dest[2].(*decimal.Decimal)) = r.stock.Quantity
	*(dest[3].(*decimal.Decimal)) = r.stock.AverageCost
	*(dest[4].(*decimal.Decimal)) = r.stock.TotalValue
	*(dest[5].(*time.Time)) = r.stock.LastMovementAt
	*(dest[6].(*time.Time)) = r.stock.UpdatedAt
	return nil
}

// scriptedQuerier registra el SQL emitido y sirve filas programadas en orden.
type scriptedQuerier struct {
	rows       []stubRow
	rowQueries []string
	execSQL    []string
}

func (q *scriptedQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.execSQL = append(q.execSQL, sql)
	return pgconn.CommandTag{}, nil
}

func (q *scriptedQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *scriptedQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.rowQueries = append(q.rowQueries, sql)
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

// Sin fila previa: un SELECT FOR UPDATE sobre cero filas no bloquea nada, así
// que dos primeros movimientos concurrentes del mismo par podrían pisarse la
// proyección. El adaptador debe materializar la fila en cero (ON CONFLICT
// DO NOTHING) y volver a seleccionar con FOR UPDATE antes de devolverla.
func TestGetForUpdate_MaterializaFilaInexistente(t *testing.T) {
	zero := &entity.CurrentStock{
		ProductID:   "prod-1",
		StockpileID: "acopio-1",
		Quantity:    decimal.Zero,
		AverageCost: decimal.Zero,
		TotalValue:  decimal.Zero,
	}
	q := &scriptedQuerier{rows: []stubRow{{err: pgx.ErrNoRows}, {stock: zero}}}
	repo := NewCurrentStockRepository(q)

	cs, err := repo.GetForUpdate("prod-1", "acopio-1")
	require.NoError(t, err)
	assert.True(t, cs.Quantity.IsZero())
	assert.True(t, cs.AverageCost.IsZero())

	require.Len(t, q.rowQueries, 2, "debe reintentar el SELECT tras materializar")
	for _, sql := range q.rowQueries {
		assert.Contains(t, sql, "FOR UPDATE")
	}
	require.Len(t, q.execSQL, 1)
	assert.Contains(t, q.execSQL[0], "ON CONFLICT (product_id, stockpile_id) DO NOTHING")
}

// Con fila existente el bloqueo del SELECT basta: no debe haber insert extra.
func TestGetForUpdate_FilaExistenteNoInserta(t *testing.T) {
	existing := &entity.CurrentStock{
		ProductID:   "prod-1",
		StockpileID: "acopio-1",
		Quantity:    decimal.NewFromInt(20),
		AverageCost: decimal.NewFromInt(8),
		TotalValue:  decimal.NewFromInt(160),
	}
	q := &scriptedQuerier{rows: []stubRow{{stock: existing}}}
	repo := NewCurrentStockRepository(q)

	cs, err := repo.GetForUpdate("prod-1", "acopio-1")
	require.NoError(t, err)
	assert.True(t, cs.Quantity.Equal(decimal.NewFromInt(20)))
	assert.Len(t, q.rowQueries, 1)
	assert.Empty(t, q.execSQL)
}
