package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stockpile representa un acopio físico de la cantera donde se almacena
// material (pila, tolva o patio). Un acopio guarda un producto a la vez en la
// práctica, pero el modelo lo permite mixto: el stock se lleva por
// (producto, acopio).
type Stockpile struct {
	ID          string
	Code        string // código corto del acopio (ej. "ACP-01")
	Name        string
	Description string
	Capacity    decimal.Decimal // capacidad máxima en toneladas (0 = sin límite)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
