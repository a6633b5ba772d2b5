package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypePRODUCTION = "PRODUCTION" // producción de la planta hacia un acopio
	MovementTypeSALES      = "SALES"      // venta despachada desde un acopio
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste con signo (conteo, merma, corrección)
	MovementTypeOPENING    = "OPENING"    // saldo inicial de un acopio
	MovementTypeDEMAND     = "DEMAND"     // demanda proyectada; no toca el stock actual
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre acopios (dos registros)
	MovementTypeEDIT       = "EDIT"       // reemplazo de un movimiento anulado
	MovementTypeCANCEL     = "CANCEL"     // reverso de un movimiento previo
)

// StockMovement es un registro inmutable del libro de movimientos (append-only).
// Nunca se actualiza ni se borra: las correcciones se hacen con CANCEL/EDIT.
type StockMovement struct {
	ID              string
	TransactionID   string
	Type            string
	Date            time.Time // fecha calendario del movimiento
	ProductID       string
	FromStockpileID string // vacío si no aplica (producción, apertura)
	ToStockpileID   string // vacío si no aplica (venta, demanda)
	Quantity        decimal.Decimal // toneladas; positivo entra, negativo sale
	UnitCost        decimal.Decimal
	TotalCost       decimal.Decimal
	UnitPrice       decimal.Decimal // solo ventas
	TotalRevenue    decimal.Decimal // solo ventas
	CustomerID      string
	VehicleID       string
	DriverID        string
	DocketNumber    string
	Reference       string // texto libre; en CANCEL/EDIT lleva el ID del movimiento original
	Notes           string
	CreatedAt       time.Time
	CreatedBy       string
}

// Incoming indica si el movimiento suma stock en el acopio destino.
func (m *StockMovement) Incoming() bool {
	return m.Quantity.IsPositive()
}

// Stockpile devuelve el acopio afectado por el registro: destino para entradas,
// origen para salidas.
func (m *StockMovement) Stockpile() string {
	if m.Quantity.IsNegative() {
		return m.FromStockpileID
	}
	return m.ToStockpileID
}
