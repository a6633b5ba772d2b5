package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Carrier representa una empresa transportadora (propia o tercerizada).
type Carrier struct {
	ID        string
	Name      string
	TaxID     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Driver representa un conductor habilitado para despachos.
type Driver struct {
	ID            string
	CarrierID     string // vacío si es conductor directo de la cantera
	Name          string
	LicenseNumber string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Vehicle representa un vehículo de carga (volqueta, doble troque, tractomula).
type Vehicle struct {
	ID          string
	CarrierID   string
	Plate       string          // placa única
	Description string
	Capacity    decimal.Decimal // capacidad de carga en toneladas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
