package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/application/usecase"
)

// FleetHandler maneja transportadoras, conductores y vehículos (protegido).
type FleetHandler struct {
	carriers *usecase.CarrierUseCase
	drivers  *usecase.DriverUseCase
	vehicles *usecase.VehicleUseCase
}

// NewFleetHandler construye el handler.
func NewFleetHandler(carriers *usecase.CarrierUseCase, drivers *usecase.DriverUseCase, vehicles *usecase.VehicleUseCase) *FleetHandler {
	return &FleetHandler{carriers: carriers, drivers: drivers, vehicles: vehicles}
}

// CreateCarrier godoc
// @Summary      Crear transportadora
// @Tags         fleet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarrierRequest  true  "Datos de la transportadora"
// @Success      201   {object}  dto.CarrierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carriers [post]
func (h *FleetHandler) CreateCarrier(c *fiber.Ctx) error {
	var in dto.CreateCarrierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.carriers.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCarriers godoc
// @Summary      Listar transportadoras
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CarrierResponse
// @Router       /api/carriers [get]
func (h *FleetHandler) ListCarriers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.carriers.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCarrier godoc
// @Summary      Obtener transportadora por ID
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transportadora"
// @Success      200  {object}  dto.CarrierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carriers/{id} [get]
func (h *FleetHandler) GetCarrier(c *fiber.Ctx) error {
	out, err := h.carriers.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "transportadora no encontrada")
	}
	return c.JSON(out)
}

// CreateDriver godoc
// @Summary      Crear conductor
// @Tags         fleet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDriverRequest  true  "Datos del conductor"
// @Success      201   {object}  dto.DriverResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/drivers [post]
func (h *FleetHandler) CreateDriver(c *fiber.Ctx) error {
	var in dto.CreateDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.drivers.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDrivers godoc
// @Summary      Listar conductores
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Param        carrier_id  query  string  false  "Filtrar por transportadora"
// @Success      200  {array}  dto.DriverResponse
// @Router       /api/drivers [get]
func (h *FleetHandler) ListDrivers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.drivers.List(c.Query("carrier_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateVehicle godoc
// @Summary      Crear vehículo
// @Tags         fleet
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehicleRequest  true  "Datos del vehículo (placa única)"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *FleetHandler) CreateVehicle(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.vehicles.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVehicles godoc
// @Summary      Listar vehículos
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Param        carrier_id  query  string  false  "Filtrar por transportadora"
// @Success      200  {array}  dto.VehicleResponse
// @Router       /api/vehicles [get]
func (h *FleetHandler) ListVehicles(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.vehicles.List(c.Query("carrier_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetVehicle godoc
// @Summary      Obtener vehículo por ID
// @Tags         fleet
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [get]
func (h *FleetHandler) GetVehicle(c *fiber.Ctx) error {
	out, err := h.vehicles.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "vehículo no encontrado")
	}
	return c.JSON(out)
}
