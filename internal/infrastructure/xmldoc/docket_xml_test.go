package xmldoc

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdelivery "github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
)

func TestBuildDocketXML(t *testing.T) {
	builder := NewDocketXMLBuilder("Cantera El Roble")

	out, err := builder.Build(appdelivery.DocketData{
		DocketNumber: "G-0042",
		DeliveryDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		ProductCode:  "GR-20",
		ProductName:  "Gravilla 20mm",
		Stockpile:    "Acopio Norte",
		Customer:     "Constructora Andina",
		Carrier:      "Transportes del Valle",
		Driver:       "Luis Pérez",
		VehiclePlate: "XYZ-123",
		Quantity:     decimal.NewFromInt(32),
		UnitPrice:    decimal.NewFromInt(25000),
		Total:        decimal.NewFromInt(800000),
		Destination:  "Obra vía nacional km 12",
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "DespatchDocket", root.Tag)
	assert.Equal(t, "G-0042", root.SelectAttrValue("number", ""))
	assert.Equal(t, "2026-03-15", root.SelectAttrValue("date", ""))

	assert.Equal(t, "Constructora Andina", doc.FindElement("//Customer/Name").Text())
	assert.Equal(t, "GR-20", doc.FindElement("//Material/Code").Text())

	qty := doc.FindElement("//Material/Quantity")
	require.NotNil(t, qty)
	assert.Equal(t, "TNE", qty.SelectAttrValue("unit", ""))
	assert.Equal(t, "32.00", qty.Text())

	assert.Equal(t, "800000.00", doc.FindElement("//Pricing/Total").Text())
	assert.Equal(t, "XYZ-123", doc.FindElement("//Transport/VehiclePlate").Text())
}

func TestBuildDocketXMLOmitsEmptyOptionals(t *testing.T) {
	builder := NewDocketXMLBuilder("Cantera El Roble")

	out, err := builder.Build(appdelivery.DocketData{
		DocketNumber: "G-0043",
		DeliveryDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		ProductCode:  "AR-FINA",
		ProductName:  "Arena fina",
		Stockpile:    "Acopio Sur",
		Customer:     "Municipio de Sopó",
		Quantity:     decimal.NewFromInt(10),
		UnitPrice:    decimal.NewFromInt(18000),
		Total:        decimal.NewFromInt(180000),
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	assert.Nil(t, doc.FindElement("//Transport/Carrier"))
	assert.Nil(t, doc.FindElement("//Transport/Driver"))
	assert.Nil(t, doc.FindElement("//Notes"))
	assert.Nil(t, doc.FindElement("//Customer/Destination"))
}
