package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/specialdk/rac-inventory-sub000/internal/application/delivery"
	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/infrastructure/metrics"
)

// DeliveryHandler maneja guías de despacho y su render PDF/XML (protegido).
type DeliveryHandler struct {
	uc      *delivery.DeliveryUseCase
	metrics *metrics.Metrics
}

// NewDeliveryHandler construye el handler de despachos.
func NewDeliveryHandler(uc *delivery.DeliveryUseCase, m *metrics.Metrics) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, metrics: m}
}

// Create godoc
// @Summary      Registrar guía de despacho
// @Description  Asocia una guía numerada a un movimiento de venta existente
// @Tags         deliveries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "Datos del despacho"
// @Success      201   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener despacho por ID
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "despacho no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar despachos
// @Tags         deliveries
// @Security     Bearer
// @Produce      json
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        limit        query  int     false  "Límite de resultados"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.DeliveryListResponse
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("customer_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DocketPDF godoc
// @Summary      Descargar guía de despacho en PDF
// @Tags         deliveries
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/docket.pdf [get]
func (h *DeliveryHandler) DocketPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.DocketPDF(id)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.DocketsTotal.WithLabelValues("pdf").Inc()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="guia-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

// DocketXML godoc
// @Summary      Descargar guía de despacho en XML
// @Tags         deliveries
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/docket.xml [get]
func (h *DeliveryHandler) DocketXML(c *fiber.Ctx) error {
	id := c.Params("id")
	xmlBytes, err := h.uc.DocketXML(id)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.DocketsTotal.WithLabelValues("xml").Inc()
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="guia-%s.xml"`, id))
	return c.Send(xmlBytes)
}
