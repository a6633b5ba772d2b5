// Package pdf implementa la guía de despacho imprimible que acompaña cada
// viaje que sale de la báscula.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cantera  │  N° Guía + Fecha                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Destino                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Acopio | Toneladas | P.Unit | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRANSPORTE: Transportadora / Conductor / Placa              │
//	│  FIRMAS: Despachado por ___  Recibido por ___                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appdelivery "github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
)

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 47}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer con separador de miles en formato es-CO.
var printer = message.NewPrinter(language.Spanish)

// DocketPDFGenerator implementa delivery.DocketPDFGenerator usando Maroto v2.
type DocketPDFGenerator struct {
	quarryName string
}

// NewDocketPDFGenerator construye el generador con el nombre de la cantera
// para el encabezado.
func NewDocketPDFGenerator(quarryName string) *DocketPDFGenerator {
	return &DocketPDFGenerator{quarryName: quarryName}
}

var _ appdelivery.DocketPDFGenerator = (*DocketPDFGenerator)(nil)

// Generate genera el PDF de la guía y devuelve sus bytes.
func (g *DocketPDFGenerator) Generate(data appdelivery.DocketData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de Despacho "+data.DocketNumber, true).
		WithAuthor(g.quarryName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(materialRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(transportRow(data))

	if data.Notes != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Observaciones: "+data.Notes, props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(8))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar guía: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: cantera (izq) y N° guía + fecha (der).
func (g *DocketPDFGenerator) headerRow(data appdelivery.DocketData) core.Row {
	fecha := data.DeliveryDate.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.quarryName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Despacho de agregados pétreos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GUÍA DE DESPACHO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(data.DocketNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y destino de la carga.
func customerRow(data appdelivery.DocketData) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Customer, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Destino: "+nonEmpty(data.Destination, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Material", 4, align.Left),
		h("Acopio", 3, align.Left),
		h("Toneladas", 2, align.Right),
		h("P. Unit.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

func materialRow(data appdelivery.DocketData) core.Row {
	material := data.ProductName
	if data.ProductCode != "" {
		material = data.ProductCode + " " + data.ProductName
	}
	return row.New(8).Add(
		col.New(4).Add(text.New(material, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(data.Stockpile, props.Text{
			Size: 9, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(formatTonnes(data.Quantity), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New("$"+formatMoney(data.UnitPrice), props.Text{
			Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New("$"+formatMoney(data.Total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// transportRow: transportadora, conductor y placa del vehículo.
func transportRow(data appdelivery.DocketData) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TRANSPORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Transportadora: %s   |   Conductor: %s   |   Placa: %s",
				nonEmpty(data.Carrier, "propia"),
				nonEmpty(data.Driver, "—"),
				nonEmpty(data.VehiclePlate, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("_______________________________", props.Text{
				Size: 9, Align: align.Center, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 7, Color: colorGray,
			}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		sig("Despachado por"),
		sig("Recibido por"),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatTonnes formatea toneladas con dos decimales y separador de miles.
func formatTonnes(q decimal.Decimal) string {
	f, _ := q.Float64()
	return printer.Sprintf("%.2f", f)
}

// formatMoney formatea un valor monetario sin decimales con separador de miles.
func formatMoney(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("%.0f", f)
}
