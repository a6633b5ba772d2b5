package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	RoyaltyRate decimal.Decimal `json:"royalty_rate,omitempty"`
	UnitMeasure string          `json:"unit_measure,omitempty"` // por defecto TNE
}

// UpdateProductRequest body para PUT /api/products/{id} (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	RoyaltyRate *decimal.Decimal `json:"royalty_rate,omitempty"`
	UnitMeasure *string          `json:"unit_measure,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	RoyaltyRate decimal.Decimal `json:"royalty_rate"`
	UnitMeasure string          `json:"unit_measure"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateStockpileRequest body para POST /api/stockpiles.
type CreateStockpileRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Capacity    decimal.Decimal `json:"capacity,omitempty"`
}

// UpdateStockpileRequest body para PUT /api/stockpiles/{id}.
type UpdateStockpileRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Capacity    *decimal.Decimal `json:"capacity,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// StockpileResponse representación de un acopio.
type StockpileResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Capacity    decimal.Decimal `json:"capacity"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockpileListResponse listado paginado de acopios.
type StockpileListResponse struct {
	Items []StockpileResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
