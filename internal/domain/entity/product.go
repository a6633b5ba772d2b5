package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un tipo de agregado producido por la cantera
// (gravilla, arena, base granular, etc.). El costo no vive aquí: el costo
// promedio ponderado se lleva por acopio en CurrentStock.
type Product struct {
	ID          string
	Code        string // código único del material (ej. "GR-20", "AR-FINA")
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta por tonelada
	RoyaltyRate decimal.Decimal // regalía por tonelada extraída (puede ser 0)
	UnitMeasure string          // unidad de medida; por defecto toneladas ("TNE")
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
