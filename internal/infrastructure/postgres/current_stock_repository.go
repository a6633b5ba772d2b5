package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

var _ repository.CurrentStockRepository = (*CurrentStockRepo)(nil)

const currentStockColumns = `product_id, stockpile_id, quantity, average_cost, total_value, last_movement_at, updated_at`

// CurrentStockRepo implementación de la proyección de stock sobre PostgreSQL
// (usable con pool o tx).
type CurrentStockRepo struct {
	q Querier
}

// NewCurrentStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrentStockRepository(q Querier) *CurrentStockRepo {
	return &CurrentStockRepo{q: q}
}

// Get obtiene el stock actual de un producto en un acopio. Si no hay fila
// devuelve una en cero.
func (r *CurrentStockRepo) Get(productID, stockpileID string) (*entity.CurrentStock, error) {
	query := `
		SELECT ` + currentStockColumns + `
		FROM current_stock WHERE product_id = $1 AND stockpile_id = $2`
	s, err := scanCurrentStock(r.q.QueryRow(context.Background(), query, productID, stockpileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroStock(productID, stockpileID), nil
		}
		return nil, fmt.Errorf("get current stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE). Si el
// par (producto, acopio) todavía no tiene fila, la materializa en cero con
// ON CONFLICT DO NOTHING y vuelve a seleccionar con FOR UPDATE: un SELECT FOR
// UPDATE sobre cero filas no bloquea nada, y dos primeros movimientos
// concurrentes se pisarían la proyección entre sí. Con la fila materializada,
// el segundo queda en espera del lock del primero.
func (r *CurrentStockRepo) GetForUpdate(productID, stockpileID string) (*entity.CurrentStock, error) {
	query := `
		SELECT ` + currentStockColumns + `
		FROM current_stock WHERE product_id = $1 AND stockpile_id = $2
		FOR UPDATE`
	s, err := scanCurrentStock(r.q.QueryRow(context.Background(), query, productID, stockpileID))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get current stock for update: %w", err)
	}

	insert := `
		INSERT INTO current_stock (product_id, stockpile_id, quantity, average_cost, total_value, last_movement_at, updated_at)
		VALUES ($1, $2, 0, 0, 0, now(), now())
		ON CONFLICT (product_id, stockpile_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, productID, stockpileID); err != nil {
		return nil, fmt.Errorf("materialize current stock row: %w", err)
	}
	s, err = scanCurrentStock(r.q.QueryRow(context.Background(), query, productID, stockpileID))
	if err != nil {
		return nil, fmt.Errorf("get current stock for update: %w", err)
	}
	return s, nil
}

// Upsert inserta o actualiza la fila de la proyección por (producto, acopio).
func (r *CurrentStockRepo) Upsert(stock *entity.CurrentStock) error {
	query := `
		INSERT INTO current_stock (product_id, stockpile_id, quantity, average_cost, total_value, last_movement_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_id, stockpile_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
			average_cost = EXCLUDED.average_cost,
			total_value = EXCLUDED.total_value,
			last_movement_at = EXCLUDED.last_movement_at,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.StockpileID, stock.Quantity, stock.AverageCost,
		stock.TotalValue, stock.LastMovementAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert current stock: %w", err)
	}
	return nil
}

// List lista la proyección completa, paginada.
func (r *CurrentStockRepo) List(limit, offset int) ([]*entity.CurrentStock, error) {
	query := `
		SELECT ` + currentStockColumns + `
		FROM current_stock ORDER BY product_id, stockpile_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list current stock: %w", err)
	}
	defer rows.Close()
	return collectCurrentStock(rows)
}

// ListByProduct lista el stock de un producto en todos los acopios.
func (r *CurrentStockRepo) ListByProduct(productID string) ([]*entity.CurrentStock, error) {
	query := `
		SELECT ` + currentStockColumns + `
		FROM current_stock WHERE product_id = $1 ORDER BY stockpile_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list current stock by product: %w", err)
	}
	defer rows.Close()
	return collectCurrentStock(rows)
}

// DeleteAll vacía la proyección; solo lo usa la reconstrucción desde el libro.
func (r *CurrentStockRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM current_stock`)
	if err != nil {
		return fmt.Errorf("delete current stock: %w", err)
	}
	return nil
}

func zeroStock(productID, stockpileID string) *entity.CurrentStock {
	return &entity.CurrentStock{
		ProductID:   productID,
		StockpileID: stockpileID,
		Quantity:    decimal.Zero,
		AverageCost: decimal.Zero,
		TotalValue:  decimal.Zero,
	}
}

func scanCurrentStock(row pgx.Row) (*entity.CurrentStock, error) {
	var s entity.CurrentStock
	err := row.Scan(
		&s.ProductID, &s.StockpileID, &s.Quantity, &s.AverageCost,
		&s.TotalValue, &s.LastMovementAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectCurrentStock(rows pgx.Rows) ([]*entity.CurrentStock, error) {
	var list []*entity.CurrentStock
	for rows.Next() {
		s, err := scanCurrentStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan current stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
