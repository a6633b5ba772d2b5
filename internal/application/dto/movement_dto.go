package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRequest body para POST /api/movements/production (y opening).
type ProductionRequest struct {
	MovementDate string           `json:"movement_date,omitempty"` // YYYY-MM-DD; vacío = hoy
	ProductID    string           `json:"product_id"`
	ToStockpileID string          `json:"to_stockpile_id"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	Reference    string           `json:"reference,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// SalesRequest body para POST /api/movements/sales. El costo no se recibe:
// la venta sale al promedio ponderado vigente.
type SalesRequest struct {
	MovementDate    string          `json:"movement_date,omitempty"`
	ProductID       string          `json:"product_id"`
	FromStockpileID string          `json:"from_stockpile_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	CustomerID      string          `json:"customer_id,omitempty"`
	VehicleID       string          `json:"vehicle_id,omitempty"`
	DriverID        string          `json:"driver_id,omitempty"`
	DocketNumber    string          `json:"docket_number,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// AdjustmentRequest body para POST /api/movements/adjustment.
type AdjustmentRequest struct {
	MovementDate       string           `json:"movement_date,omitempty"`
	ProductID          string           `json:"product_id"`
	StockpileID        string           `json:"stockpile_id"`
	QuantityAdjustment decimal.Decimal  `json:"quantity_adjustment"` // con signo
	UnitCost           *decimal.Decimal `json:"unit_cost,omitempty"` // solo ajustes positivos
	Reference          string           `json:"reference,omitempty"`
	Notes              string           `json:"notes,omitempty"`
}

// TransferRequest body para POST /api/movements/transfer.
type TransferRequest struct {
	MovementDate    string          `json:"movement_date,omitempty"`
	ProductID       string          `json:"product_id"`
	FromStockpileID string          `json:"from_stockpile_id"`
	ToStockpileID   string          `json:"to_stockpile_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
}

// DemandRequest body para POST /api/movements/demand.
type DemandRequest struct {
	MovementDate string          `json:"movement_date,omitempty"`
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	CustomerID   string          `json:"customer_id,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// CancelRequest body para POST /api/movements/{id}/cancel.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// EditMovementRequest body para PUT /api/movements/{id}: el reemplazo completo
// del movimiento, con el tipo de negocio original.
type EditMovementRequest struct {
	Type            string           `json:"type"`
	MovementDate    string           `json:"movement_date,omitempty"`
	ProductID       string           `json:"product_id"`
	StockpileID     string           `json:"stockpile_id,omitempty"`
	FromStockpileID string           `json:"from_stockpile_id,omitempty"`
	ToStockpileID   string           `json:"to_stockpile_id,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	UnitPrice       decimal.Decimal  `json:"unit_price,omitempty"`
	CustomerID      string           `json:"customer_id,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// MovementResponse fila del libro de movimientos.
type MovementResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id"`
	Type            string          `json:"type"`
	MovementDate    string          `json:"movement_date"`
	ProductID       string          `json:"product_id"`
	FromStockpileID string          `json:"from_stockpile_id,omitempty"`
	ToStockpileID   string          `json:"to_stockpile_id,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	UnitPrice       decimal.Decimal `json:"unit_price,omitempty"`
	TotalRevenue    decimal.Decimal `json:"total_revenue,omitempty"`
	CustomerID      string          `json:"customer_id,omitempty"`
	VehicleID       string          `json:"vehicle_id,omitempty"`
	DriverID        string          `json:"driver_id,omitempty"`
	DocketNumber    string          `json:"docket_number,omitempty"`
	Reference       string          `json:"reference,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by,omitempty"`
}

// MovementListResponse listado paginado del libro.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResponse fila de stock actual por (producto, acopio).
type StockResponse struct {
	ProductID      string          `json:"product_id"`
	StockpileID    string          `json:"stockpile_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	AverageCost    decimal.Decimal `json:"average_cost"`
	TotalValue     decimal.Decimal `json:"total_value"`
	LastMovementAt time.Time       `json:"last_movement_at"`
}

// RebuildResponse resultado de la reconstrucción de la proyección.
type RebuildResponse struct {
	RebuiltPairs int `json:"rebuilt_pairs"`
}
