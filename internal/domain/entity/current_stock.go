package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentStock es la proyección materializada del libro de movimientos para un
// par (producto, acopio): saldo corriente, costo promedio ponderado y valor.
// No es autoritativa: siempre puede reconstruirse reproduciendo el libro en
// orden cronológico. Invariante: TotalValue == Quantity × AverageCost (con
// tolerancia de redondeo monetario).
type CurrentStock struct {
	ProductID      string
	StockpileID    string
	Quantity       decimal.Decimal // toneladas en el acopio
	AverageCost    decimal.Decimal // costo promedio ponderado por tonelada
	TotalValue     decimal.Decimal // Quantity × AverageCost, redondeado a 2 decimales
	LastMovementAt time.Time
	UpdatedAt      time.Time
}
