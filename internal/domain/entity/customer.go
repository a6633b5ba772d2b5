package entity

import "time"

// Customer representa un cliente de la cantera (constructora, municipio, particular).
type Customer struct {
	ID          string
	Name        string
	TaxID       string // NIT o identificación tributaria
	ContactName string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
