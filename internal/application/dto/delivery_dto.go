package dto

import "time"

// CreateDeliveryRequest body para POST /api/deliveries: vincula un movimiento
// de venta con la guía física del despacho.
type CreateDeliveryRequest struct {
	MovementID   string `json:"movement_id"`
	DocketNumber string `json:"docket_number"`
	CustomerID   string `json:"customer_id"`
	CarrierID    string `json:"carrier_id,omitempty"`
	VehicleID    string `json:"vehicle_id,omitempty"`
	DriverID     string `json:"driver_id,omitempty"`
	DeliveryDate string `json:"delivery_date,omitempty"` // YYYY-MM-DD; vacío = hoy
	Destination  string `json:"destination,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// DeliveryResponse representación de un despacho.
type DeliveryResponse struct {
	ID           string    `json:"id"`
	MovementID   string    `json:"movement_id"`
	DocketNumber string    `json:"docket_number"`
	CustomerID   string    `json:"customer_id"`
	CarrierID    string    `json:"carrier_id,omitempty"`
	VehicleID    string    `json:"vehicle_id,omitempty"`
	DriverID     string    `json:"driver_id,omitempty"`
	DeliveryDate time.Time `json:"delivery_date"`
	Destination  string    `json:"destination,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DeliveryListResponse listado paginado de despachos.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
