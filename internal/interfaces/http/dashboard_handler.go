package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/application/usecase"
)

// DashboardHandler expone el resumen operativo (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen operativo del día
// @Description  Totales de stock, producción y ventas del día más el listado de saldos bajos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        low_stock_threshold  query  number  false  "Umbral de saldo bajo en toneladas"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var threshold *decimal.Decimal
	if s := c.Query("low_stock_threshold"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			return badRequest(c, "umbral de saldo bajo inválido")
		}
		threshold = &d
	}
	out, err := h.uc.GetSummary(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
