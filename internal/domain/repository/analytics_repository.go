package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary agregados del día para el tablero.
type DashboardSummary struct {
	TotalOnHand      decimal.Decimal
	TotalStockValue  decimal.Decimal
	TodayProduction  decimal.Decimal
	TodaySalesTonnes decimal.Decimal
	TodaySalesValue  decimal.Decimal
	TodayMovements   int
}

// LowStockRow par (producto, acopio) con saldo por debajo del umbral.
type LowStockRow struct {
	ProductID   string
	ProductName string
	StockpileID string
	Quantity    decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura para el tablero.
type AnalyticsRepository interface {
	GetDashboardSummary(ctx context.Context, day time.Time) (*DashboardSummary, error)
	ListLowStock(ctx context.Context, threshold decimal.Decimal) ([]LowStockRow, error)
}
