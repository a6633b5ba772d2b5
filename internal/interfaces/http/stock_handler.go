package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	appinventory "github.com/specialdk/rac-inventory-sub000/internal/application/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/metrics"
)

// StockHandler consulta de la proyección de stock actual y reconstrucción
// desde el libro (protegido).
type StockHandler struct {
	query   *appinventory.QueryUseCase
	rebuild *appinventory.RegisterMovementUseCase
	metrics *metrics.Metrics
}

// NewStockHandler construye el handler.
func NewStockHandler(query *appinventory.QueryUseCase, rebuild *appinventory.RegisterMovementUseCase, m *metrics.Metrics) *StockHandler {
	return &StockHandler{query: query, rebuild: rebuild, metrics: m}
}

// List godoc
// @Summary      Listar stock actual por (producto, acopio)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var (
		rows []*entity.CurrentStock
		err  error
	)
	if productID := c.Query("product_id"); productID != "" {
		rows, err = h.query.ListStockByProduct(productID)
	} else {
		limit, offset := pageParams(c)
		rows, err = h.query.ListStock(limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.StockResponse, 0, len(rows))
	for _, s := range rows {
		items = append(items, toStockResponse(s))
	}
	return c.JSON(items)
}

// Get godoc
// @Summary      Stock actual de un producto en un acopio
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id    path  string  true  "ID del producto"
// @Param        stockpile_id  path  string  true  "ID del acopio"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/stock/{product_id}/{stockpile_id} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	stockpileID := c.Params("stockpile_id")
	if productID == "" || stockpileID == "" {
		return badRequest(c, "product_id y stockpile_id son requeridos")
	}
	s, err := h.query.GetStock(productID, stockpileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockResponse(s))
}

// Rebuild godoc
// @Summary      Reconstruir la proyección de stock desde el libro
// @Description  Vacía current_stock y reproduce el libro completo en orden
//               cronológico, en una sola transacción. Solo admin.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RebuildResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/rebuild [post]
func (h *StockHandler) Rebuild(c *fiber.Ctx) error {
	pairs, err := h.rebuild.RebuildCurrentStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.StockRebuildsTotal.Inc()
	return c.JSON(dto.RebuildResponse{RebuiltPairs: pairs})
}

func toStockResponse(s *entity.CurrentStock) dto.StockResponse {
	return dto.StockResponse{
		ProductID:      s.ProductID,
		StockpileID:    s.StockpileID,
		Quantity:       s.Quantity,
		AverageCost:    s.AverageCost,
		TotalValue:     s.TotalValue,
		LastMovementAt: s.LastMovementAt,
	}
}
