package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// ReportUseCase genera reportes XLSX del inventario y del libro de movimientos.
type ReportUseCase struct {
	stockRepo     repository.CurrentStockRepository
	movementRepo  repository.StockMovementRepository
	productRepo   repository.ProductRepository
	stockpileRepo repository.StockpileRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	stockRepo repository.CurrentStockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	stockpileRepo repository.StockpileRepository,
) *ReportUseCase {
	return &ReportUseCase{
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		stockpileRepo: stockpileRepo,
	}
}

// nameMaps carga los nombres de productos y acopios para rotular filas.
func (uc *ReportUseCase) nameMaps() (map[string]string, map[string]string, error) {
	products, err := uc.productRepo.List(1000, 0)
	if err != nil {
		return nil, nil, err
	}
	stockpiles, err := uc.stockpileRepo.List(1000, 0)
	if err != nil {
		return nil, nil, err
	}
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = fmt.Sprintf("%s %s", p.Code, p.Name)
	}
	stockpileNames := make(map[string]string, len(stockpiles))
	for _, s := range stockpiles {
		stockpileNames[s.ID] = s.Name
	}
	return productNames, stockpileNames, nil
}

// StockXLSX exporta la proyección de stock actual como archivo XLSX.
func (uc *ReportUseCase) StockXLSX() ([]byte, error) {
	rows, err := uc.stockRepo.List(10000, 0)
	if err != nil {
		return nil, err
	}
	productNames, stockpileNames, err := uc.nameMaps()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"producto",
		"acopio",
		"cantidad_tne",
		"costo_promedio",
		"valor_total",
		"ultimo_movimiento",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, s := range rows {
		excelRow := []interface{}{
			label(productNames, s.ProductID),
			label(stockpileNames, s.StockpileID),
			s.Quantity.String(),
			s.AverageCost.String(),
			s.TotalValue.String(),
			s.LastMovementAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		rowNum++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MovementsXLSX exporta el libro de movimientos filtrado como archivo XLSX.
func (uc *ReportUseCase) MovementsXLSX(filter repository.MovementFilter) ([]byte, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10000
	}
	movements, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	productNames, stockpileNames, err := uc.nameMaps()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha",
		"tipo",
		"producto",
		"acopio_origen",
		"acopio_destino",
		"cantidad_tne",
		"costo_unitario",
		"costo_total",
		"precio_unitario",
		"ingreso_total",
		"guia",
		"referencia",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, m := range movements {
		excelRow := []interface{}{
			m.Date.Format("2006-01-02"),
			m.Type,
			label(productNames, m.ProductID),
			label(stockpileNames, m.FromStockpileID),
			label(stockpileNames, m.ToStockpileID),
			m.Quantity.String(),
			m.UnitCost.String(),
			m.TotalCost.String(),
			priceCell(m),
			revenueCell(m),
			m.DocketNumber,
			m.Reference,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		rowNum++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func label(names map[string]string, id string) string {
	if id == "" {
		return ""
	}
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

func priceCell(m *entity.StockMovement) string {
	if m.Type != entity.MovementTypeSALES {
		return ""
	}
	return m.UnitPrice.String()
}

func revenueCell(m *entity.StockMovement) string {
	if m.Type != entity.MovementTypeSALES {
		return ""
	}
	return m.TotalRevenue.String()
}
