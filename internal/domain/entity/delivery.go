package entity

import "time"

// Delivery representa el despacho físico asociado a un movimiento de venta:
// la guía (docket) con cliente, vehículo, conductor y destino. El tonelaje y
// los valores viven en el StockMovement referenciado.
type Delivery struct {
	ID           string
	MovementID   string // movimiento SALES que originó el despacho
	DocketNumber string // número de guía único
	CustomerID   string
	CarrierID    string
	VehicleID    string
	DriverID     string
	DeliveryDate time.Time
	Destination  string
	Notes        string
	CreatedAt    time.Time
}
