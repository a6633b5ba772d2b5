package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/report"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler expone los reportes XLSX (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Exportar stock actual a XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/stock.xlsx [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	data, err := h.uc.StockXLSX()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return c.Send(data)
}

// Movements godoc
// @Summary      Exportar libro de movimientos a XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        stockpile_id  query  string  false  "Filtrar por acopio"
// @Param        type          query  string  false  "Filtrar por tipo de movimiento"
// @Param        from          query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to            query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.xlsx [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID:   c.Query("product_id"),
		StockpileID: c.Query("stockpile_id"),
		Type:        c.Query("type"),
	}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "parámetro from inválido, use YYYY-MM-DD")
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "parámetro to inválido, use YYYY-MM-DD")
		}
		filter.To = &t
	}
	data, err := h.uc.MovementsXLSX(filter)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
	return c.Send(data)
}
