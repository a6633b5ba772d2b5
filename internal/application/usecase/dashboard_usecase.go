package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de saldo bajo en toneladas cuando el
// request no indica uno.
var DefaultLowStockThreshold = decimal.NewFromInt(50)

// DashboardUseCase arma el resumen operativo del día.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
}

func NewDashboardUseCase(analytics repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics}
}

// GetSummary devuelve los agregados del día y los pares con saldo bajo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, threshold *decimal.Decimal) (*dto.DashboardResponse, error) {
	day := time.Now()
	summary, err := uc.analytics.GetDashboardSummary(ctx, day)
	if err != nil {
		return nil, err
	}
	th := DefaultLowStockThreshold
	if threshold != nil {
		th = *threshold
	}
	rows, err := uc.analytics.ListLowStock(ctx, th)
	if err != nil {
		return nil, err
	}
	low := make([]dto.LowStockItem, 0, len(rows))
	for _, r := range rows {
		low = append(low, dto.LowStockItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			StockpileID: r.StockpileID,
			Quantity:    r.Quantity,
		})
	}
	return &dto.DashboardResponse{
		TotalOnHand:      summary.TotalOnHand,
		TotalStockValue:  summary.TotalStockValue,
		TodayProduction:  summary.TodayProduction,
		TodaySalesTonnes: summary.TodaySalesTonnes,
		TodaySalesValue:  summary.TodaySalesValue,
		TodayMovements:   summary.TodayMovements,
		LowStock:         low,
	}, nil
}
