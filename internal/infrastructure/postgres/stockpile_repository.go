package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

var _ repository.StockpileRepository = (*StockpileRepo)(nil)

const stockpileColumns = `id, code, name, description, capacity, active, created_at, updated_at`

// StockpileRepo implementación de StockpileRepository sobre PostgreSQL.
type StockpileRepo struct {
	q Querier
}

// NewStockpileRepository construye el adaptador de acopios.
func NewStockpileRepository(q Querier) *StockpileRepo {
	return &StockpileRepo{q: q}
}

// Create persiste un acopio. Devuelve ErrDuplicate si el código ya existe.
func (r *StockpileRepo) Create(s *entity.Stockpile) error {
	query := `
		INSERT INTO stockpiles (` + stockpileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Code, s.Name, nullable(s.Description), s.Capacity, s.Active,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stockpile: %w", err)
	}
	return nil
}

// GetByID obtiene un acopio por ID. Devuelve nil si no existe.
func (r *StockpileRepo) GetByID(id string) (*entity.Stockpile, error) {
	query := `SELECT ` + stockpileColumns + ` FROM stockpiles WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCode obtiene un acopio por código. Devuelve nil si no existe.
func (r *StockpileRepo) GetByCode(code string) (*entity.Stockpile, error) {
	query := `SELECT ` + stockpileColumns + ` FROM stockpiles WHERE code = $1`
	return r.getOne(query, code)
}

func (r *StockpileRepo) getOne(query string, arg any) (*entity.Stockpile, error) {
	s, err := scanStockpile(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stockpile: %w", err)
	}
	return s, nil
}

// Update actualiza un acopio existente.
func (r *StockpileRepo) Update(s *entity.Stockpile) error {
	query := `
		UPDATE stockpiles
		SET code = $2, name = $3, description = $4, capacity = $5, active = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Code, s.Name, nullable(s.Description), s.Capacity, s.Active, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stockpile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista acopios ordenados por código.
func (r *StockpileRepo) List(limit, offset int) ([]*entity.Stockpile, error) {
	query := `SELECT ` + stockpileColumns + ` FROM stockpiles ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stockpiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stockpile
	for rows.Next() {
		s, err := scanStockpile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stockpile: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un acopio por ID.
func (r *StockpileRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stockpiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stockpile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStockpile(row pgx.Row) (*entity.Stockpile, error) {
	var s entity.Stockpile
	var description *string
	err := row.Scan(&s.ID, &s.Code, &s.Name, &description, &s.Capacity, &s.Active,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Description = fromNullable(description)
	return &s, nil
}
