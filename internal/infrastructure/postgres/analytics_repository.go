package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el tablero.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetDashboardSummary calcula los agregados del día indicado.
func (r *AnalyticsRepo) GetDashboardSummary(ctx context.Context, day time.Time) (*repository.DashboardSummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	s := &repository.DashboardSummary{}

	stockQuery := `
		SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_value), 0)
		FROM current_stock`
	if err := r.q.QueryRow(ctx, stockQuery).Scan(&s.TotalOnHand, &s.TotalStockValue); err != nil {
		return nil, fmt.Errorf("dashboard stock totals: %w", err)
	}

	dayQuery := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE type = $3), 0),
			COALESCE(SUM(-quantity) FILTER (WHERE type = $4), 0),
			COALESCE(SUM(total_revenue) FILTER (WHERE type = $4), 0),
			COUNT(*)
		FROM stock_movements
		WHERE date >= $1 AND date < $2`
	err := r.q.QueryRow(ctx, dayQuery, dayStart, dayEnd,
		entity.MovementTypePRODUCTION, entity.MovementTypeSALES).Scan(
		&s.TodayProduction, &s.TodaySalesTonnes, &s.TodaySalesValue, &s.TodayMovements,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard day totals: %w", err)
	}
	return s, nil
}

// ListLowStock devuelve los pares (producto, acopio) con saldo por debajo del umbral.
func (r *AnalyticsRepo) ListLowStock(ctx context.Context, threshold decimal.Decimal) ([]repository.LowStockRow, error) {
	query := `
		SELECT cs.product_id, p.name, cs.stockpile_id, cs.quantity
		FROM current_stock cs
		JOIN products p ON p.id = cs.product_id
		WHERE cs.quantity < $1
		ORDER BY cs.quantity ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.StockpileID, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
