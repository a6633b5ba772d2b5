package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	appinventory "github.com/specialdk/rac-inventory-sub000/internal/application/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/metrics"
)

// MovementHandler maneja el registro y consulta de movimientos del libro de
// stock (protegido).
type MovementHandler struct {
	register *appinventory.RegisterMovementUseCase
	query    *appinventory.QueryUseCase
	metrics  *metrics.Metrics
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *appinventory.RegisterMovementUseCase, query *appinventory.QueryUseCase, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{register: register, query: query, metrics: m}
}

// parseMovementDate interpreta YYYY-MM-DD; vacío = hoy.
func parseMovementDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", s)
}

func (h *MovementHandler) run(c *fiber.Ctx, input appinventory.MovementInput) error {
	input.UserID = GetUserID(c)
	mov, err := h.register.RegisterMovement(c.Context(), input)
	if err != nil {
		h.metrics.MovementErrorsTotal.WithLabelValues(reason(err)).Inc()
		return respondError(c, err)
	}
	h.metrics.MovementsTotal.WithLabelValues(mov.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

func reason(err error) string {
	switch err {
	case domain.ErrInsufficientStock:
		return "insufficient_stock"
	case domain.ErrInvalidInput:
		return "invalid_input"
	case domain.ErrNotFound:
		return "not_found"
	case domain.ErrMovementClosed:
		return "movement_closed"
	}
	return "internal"
}

// Production godoc
// @Summary      Registrar producción hacia un acopio
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductionRequest  true  "product_id, to_stockpile_id, quantity, unit_cost"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/production [post]
func (h *MovementHandler) Production(c *fiber.Ctx) error {
	return h.intake(c, entity.MovementTypePRODUCTION)
}

// Opening godoc
// @Summary      Registrar saldo inicial de un acopio
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductionRequest  true  "product_id, to_stockpile_id, quantity, unit_cost"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/opening [post]
func (h *MovementHandler) Opening(c *fiber.Ctx) error {
	return h.intake(c, entity.MovementTypeOPENING)
}

func (h *MovementHandler) intake(c *fiber.Ctx, movementType string) error {
	var in dto.ProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	return h.run(c, appinventory.MovementInput{
		Type:          movementType,
		Date:          date,
		ProductID:     in.ProductID,
		ToStockpileID: in.ToStockpileID,
		Quantity:      in.Quantity,
		UnitCost:      in.UnitCost,
		Reference:     in.Reference,
		Notes:         in.Notes,
	})
}

// Sales godoc
// @Summary      Registrar venta despachada desde un acopio
// @Description  La venta sale al costo promedio ponderado vigente del acopio;
//               el costo nunca se recibe del cliente.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesRequest  true  "product_id, from_stockpile_id, quantity, unit_price"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/sales [post]
func (h *MovementHandler) Sales(c *fiber.Ctx) error {
	var in dto.SalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	return h.run(c, appinventory.MovementInput{
		Type:            entity.MovementTypeSALES,
		Date:            date,
		ProductID:       in.ProductID,
		FromStockpileID: in.FromStockpileID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		CustomerID:      in.CustomerID,
		VehicleID:       in.VehicleID,
		DriverID:        in.DriverID,
		DocketNumber:    in.DocketNumber,
		Reference:       in.Reference,
		Notes:           in.Notes,
	})
}

// Adjustment godoc
// @Summary      Registrar ajuste de inventario con signo
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "product_id, stockpile_id, quantity_adjustment"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/adjustment [post]
func (h *MovementHandler) Adjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	return h.run(c, appinventory.MovementInput{
		Type:        entity.MovementTypeADJUSTMENT,
		Date:        date,
		ProductID:   in.ProductID,
		StockpileID: in.StockpileID,
		Quantity:    in.QuantityAdjustment,
		UnitCost:    in.UnitCost,
		Reference:   in.Reference,
		Notes:       in.Notes,
	})
}

// Transfer godoc
// @Summary      Registrar traslado entre acopios
// @Description  Genera dos registros enlazados por transaction_id: salida del
//               origen y entrada al destino, al costo promedio del origen.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, from_stockpile_id, to_stockpile_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/transfer [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	return h.run(c, appinventory.MovementInput{
		Type:            entity.MovementTypeTRANSFER,
		Date:            date,
		ProductID:       in.ProductID,
		FromStockpileID: in.FromStockpileID,
		ToStockpileID:   in.ToStockpileID,
		Quantity:        in.Quantity,
		Notes:           in.Notes,
	})
}

// Demand godoc
// @Summary      Registrar demanda proyectada
// @Description  Solo escribe en el libro; no afecta el stock actual.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DemandRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/demand [post]
func (h *MovementHandler) Demand(c *fiber.Ctx) error {
	var in dto.DemandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	return h.run(c, appinventory.MovementInput{
		Type:       entity.MovementTypeDEMAND,
		Date:       date,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		CustomerID: in.CustomerID,
		Reference:  in.Reference,
		Notes:      in.Notes,
	})
}

// Cancel godoc
// @Summary      Anular un movimiento
// @Description  Inserta un registro CANCEL que revierte el original; el
//               original queda intacto como pista de auditoría.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.CancelRequest  false  "motivo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/cancel [post]
func (h *MovementHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	var in dto.CancelRequest
	_ = c.BodyParser(&in) // body opcional

	mov, err := h.register.CancelMovement(c.Context(), id, GetUserID(c), in.Reason)
	if err != nil {
		h.metrics.MovementErrorsTotal.WithLabelValues(reason(err)).Inc()
		return respondError(c, err)
	}
	h.metrics.MovementsTotal.WithLabelValues(mov.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// Edit godoc
// @Summary      Corregir un movimiento
// @Description  Anula el original y registra el reemplazo (tipo EDIT) en una
//               sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento a corregir"
// @Param        body  body  dto.EditMovementRequest  true  "reemplazo completo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	var in dto.EditMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	date, err := parseMovementDate(in.MovementDate)
	if err != nil {
		return badRequest(c, "movement_date inválida, formato YYYY-MM-DD")
	}
	mov, err := h.register.EditMovement(c.Context(), id, appinventory.MovementInput{
		UserID:          GetUserID(c),
		Type:            in.Type,
		Date:            date,
		ProductID:       in.ProductID,
		StockpileID:     in.StockpileID,
		FromStockpileID: in.FromStockpileID,
		ToStockpileID:   in.ToStockpileID,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		UnitPrice:       in.UnitPrice,
		CustomerID:      in.CustomerID,
		Notes:           in.Notes,
	})
	if err != nil {
		h.metrics.MovementErrorsTotal.WithLabelValues(reason(err)).Inc()
		return respondError(c, err)
	}
	h.metrics.MovementsTotal.WithLabelValues(mov.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar el libro de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        stockpile_id  query  string  false  "Filtrar por acopio (origen o destino)"
// @Param        type          query  string  false  "Filtrar por tipo"
// @Param        from          query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to            query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.MovementFilter{
		ProductID:   c.Query("product_id"),
		StockpileID: c.Query("stockpile_id"),
		Type:        c.Query("type"),
		Limit:       limit,
		Offset:      offset,
	}
	if s := c.Query("from"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "from inválida, formato YYYY-MM-DD")
		}
		filter.From = &d
	}
	if s := c.Query("to"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return badRequest(c, "to inválida, formato YYYY-MM-DD")
		}
		filter.To = &d
	}

	movements, err := h.query.ListMovements(filter)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	mov, err := h.query.GetMovement(id)
	if err != nil {
		return respondError(c, err)
	}
	if mov == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(toMovementResponse(mov))
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              m.ID,
		TransactionID:   m.TransactionID,
		Type:            m.Type,
		MovementDate:    m.Date.Format("2006-01-02"),
		ProductID:       m.ProductID,
		FromStockpileID: m.FromStockpileID,
		ToStockpileID:   m.ToStockpileID,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		TotalCost:       m.TotalCost,
		UnitPrice:       m.UnitPrice,
		TotalRevenue:    m.TotalRevenue,
		CustomerID:      m.CustomerID,
		VehicleID:       m.VehicleID,
		DriverID:        m.DriverID,
		DocketNumber:    m.DocketNumber,
		Reference:       m.Reference,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}
