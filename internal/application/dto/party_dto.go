package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	TaxID       string `json:"tax_id,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/{id}.
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty"`
	TaxID       *string `json:"tax_id,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// CustomerResponse representación de un cliente.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateCarrierRequest body para POST /api/carriers.
type CreateCarrierRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CarrierResponse representación de una transportadora.
type CarrierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateDriverRequest body para POST /api/drivers.
type CreateDriverRequest struct {
	CarrierID     string `json:"carrier_id,omitempty"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// DriverResponse representación de un conductor.
type DriverResponse struct {
	ID            string    `json:"id"`
	CarrierID     string    `json:"carrier_id,omitempty"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateVehicleRequest body para POST /api/vehicles.
type CreateVehicleRequest struct {
	CarrierID   string          `json:"carrier_id,omitempty"`
	Plate       string          `json:"plate"`
	Description string          `json:"description,omitempty"`
	Capacity    decimal.Decimal `json:"capacity,omitempty"`
}

// VehicleResponse representación de un vehículo.
type VehicleResponse struct {
	ID          string          `json:"id"`
	CarrierID   string          `json:"carrier_id,omitempty"`
	Plate       string          `json:"plate"`
	Description string          `json:"description,omitempty"`
	Capacity    decimal.Decimal `json:"capacity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
