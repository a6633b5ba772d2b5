package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/application/usecase"
)

// StockpileHandler maneja las peticiones HTTP para acopios (protegido).
type StockpileHandler struct {
	uc *usecase.StockpileUseCase
}

// NewStockpileHandler construye el handler.
func NewStockpileHandler(uc *usecase.StockpileUseCase) *StockpileHandler {
	return &StockpileHandler{uc: uc}
}

// Create godoc
// @Summary      Crear acopio
// @Tags         stockpiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockpileRequest  true  "Datos del acopio"
// @Success      201   {object}  dto.StockpileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stockpiles [post]
func (h *StockpileHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockpileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Code == "" || in.Name == "" {
		return badRequest(c, "code y name son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener acopio por ID
// @Tags         stockpiles
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del acopio"
// @Success      200  {object}  dto.StockpileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockpiles/{id} [get]
func (h *StockpileHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "acopio no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar acopios
// @Tags         stockpiles
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.StockpileListResponse
// @Router       /api/stockpiles [get]
func (h *StockpileHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar acopio
// @Tags         stockpiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del acopio"
// @Param        body  body  dto.UpdateStockpileRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StockpileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockpiles/{id} [put]
func (h *StockpileHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	var in dto.UpdateStockpileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "acopio no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar acopio
// @Tags         stockpiles
// @Security     Bearer
// @Param        id   path  string  true  "ID del acopio"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockpiles/{id} [delete]
func (h *StockpileHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id es requerido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
