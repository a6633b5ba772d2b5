package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, transaction_id, type, date, product_id, from_stockpile_id, to_stockpile_id,
		quantity, unit_cost, total_cost, unit_price, total_revenue,
		customer_id, vehicle_id, driver_id, docket_number, reference, notes, created_at, created_by`

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un registro del libro. El libro es append-only: no hay
// UPDATE ni DELETE en este adaptador.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TransactionID, m.Type, m.Date, m.ProductID,
		nullable(m.FromStockpileID), nullable(m.ToStockpileID),
		m.Quantity, m.UnitCost, m.TotalCost, m.UnitPrice, m.TotalRevenue,
		nullable(m.CustomerID), nullable(m.VehicleID), nullable(m.DriverID),
		nullable(m.DocketNumber), nullable(m.Reference), nullable(m.Notes),
		m.CreatedAt, nullable(m.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos según el filtro, más recientes primero.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.StockpileID != "" {
		query += fmt.Sprintf(" AND (from_stockpile_id = $%d OR to_stockpile_id = $%d)", pos, pos)
		args = append(args, filter.StockpileID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ExistsCancellation indica si ya hay un CANCEL que referencia el movimiento.
func (r *StockMovementRepo) ExistsCancellation(movementID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stock_movements WHERE type = $1 AND reference = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, entity.MovementTypeCANCEL, movementID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists cancellation: %w", err)
	}
	return exists, nil
}

// ListChronological devuelve todo el libro en orden de creación, para
// reconstruir la proyección CurrentStock.
func (r *StockMovementRepo) ListChronological() ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list chronological: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var fromSP, toSP, customer, vehicle, driver, docket, reference, notes, createdBy *string
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.Type, &m.Date, &m.ProductID, &fromSP, &toSP,
		&m.Quantity, &m.UnitCost, &m.TotalCost, &m.UnitPrice, &m.TotalRevenue,
		&customer, &vehicle, &driver, &docket, &reference, &notes, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		return nil, err
	}
	m.FromStockpileID = fromNullable(fromSP)
	m.ToStockpileID = fromNullable(toSP)
	m.CustomerID = fromNullable(customer)
	m.VehicleID = fromNullable(vehicle)
	m.DriverID = fromNullable(driver)
	m.DocketNumber = fromNullable(docket)
	m.Reference = fromNullable(reference)
	m.Notes = fromNullable(notes)
	m.CreatedBy = fromNullable(createdBy)
	return &m, nil
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
