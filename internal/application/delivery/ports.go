package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocketData datos planos de una guía de despacho, listos para renderizar.
// El usecase resuelve los nombres; los generadores solo formatean.
type DocketData struct {
	DocketNumber string
	DeliveryDate time.Time
	ProductCode  string
	ProductName  string
	Stockpile    string
	Customer     string
	Carrier      string
	Driver       string
	VehiclePlate string
	Quantity     decimal.Decimal // toneladas
	UnitPrice    decimal.Decimal
	Total        decimal.Decimal
	Destination  string
	Notes        string
}

// DocketPDFGenerator genera la guía de despacho en PDF para impresión en báscula.
type DocketPDFGenerator interface {
	Generate(data DocketData) ([]byte, error)
}

// DocketXMLBuilder serializa la guía como XML para intercambio con sistemas externos.
type DocketXMLBuilder interface {
	Build(data DocketData) ([]byte, error)
}
