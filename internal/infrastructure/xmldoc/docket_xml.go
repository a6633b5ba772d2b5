// Package xmldoc serializa la guía de despacho como XML para intercambio con
// sistemas externos (interventoría, clientes con integración propia).
package xmldoc

import (
	"fmt"

	"github.com/beevik/etree"

	appdelivery "github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
)

// DocketXMLBuilder implementa delivery.DocketXMLBuilder usando etree.
type DocketXMLBuilder struct {
	quarryName string
}

// NewDocketXMLBuilder construye el serializador con el nombre de la cantera.
func NewDocketXMLBuilder(quarryName string) *DocketXMLBuilder {
	return &DocketXMLBuilder{quarryName: quarryName}
}

var _ appdelivery.DocketXMLBuilder = (*DocketXMLBuilder)(nil)

// Build serializa la guía con declaración XML e indentación de dos espacios.
func (b *DocketXMLBuilder) Build(data appdelivery.DocketData) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DespatchDocket")
	root.CreateAttr("number", data.DocketNumber)
	root.CreateAttr("date", data.DeliveryDate.Format("2006-01-02"))

	issuer := root.CreateElement("Issuer")
	issuer.CreateElement("Name").SetText(b.quarryName)

	customer := root.CreateElement("Customer")
	customer.CreateElement("Name").SetText(data.Customer)
	if data.Destination != "" {
		customer.CreateElement("Destination").SetText(data.Destination)
	}

	material := root.CreateElement("Material")
	material.CreateElement("Code").SetText(data.ProductCode)
	material.CreateElement("Name").SetText(data.ProductName)
	material.CreateElement("Stockpile").SetText(data.Stockpile)
	qty := material.CreateElement("Quantity")
	qty.CreateAttr("unit", "TNE")
	qty.SetText(data.Quantity.StringFixed(2))

	pricing := root.CreateElement("Pricing")
	pricing.CreateElement("UnitPrice").SetText(data.UnitPrice.StringFixed(2))
	pricing.CreateElement("Total").SetText(data.Total.StringFixed(2))

	transport := root.CreateElement("Transport")
	if data.Carrier != "" {
		transport.CreateElement("Carrier").SetText(data.Carrier)
	}
	if data.Driver != "" {
		transport.CreateElement("Driver").SetText(data.Driver)
	}
	if data.VehiclePlate != "" {
		transport.CreateElement("VehiclePlate").SetText(data.VehiclePlate)
	}

	if data.Notes != "" {
		root.CreateElement("Notes").SetText(data.Notes)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmldoc: serializar guía: %w", err)
	}
	return out, nil
}
