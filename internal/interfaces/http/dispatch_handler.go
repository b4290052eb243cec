package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
)

// DispatchHandler maneja las peticiones HTTP para solicitudes de despacho
// (protegido).
type DispatchHandler struct {
	uc *usecase.DispatchUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *usecase.DispatchUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de despacho
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDispatchRequest  true  "Solicitud de stock"
// @Success      201   {object}  dto.DispatchRequestDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dispatches [post]
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id es requerido"})
	}
	if len(in.Requested) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "requested no puede estar vacío"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByStore godoc
// @Summary      Listar solicitudes de una tienda
// @Tags         dispatches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.DispatchRequestDTO
// @Router       /api/stores/{id}/dispatches [get]
func (h *DispatchHandler) ListByStore(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByStore(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar el estado de una solicitud
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateDispatchStatusRequest  true  "Nuevo estado (la entrega va por /deliver)"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/status [patch]
func (h *DispatchHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDispatchStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), id, in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deliver godoc
// @Summary      Marcar la entrega de una solicitud
// @Tags         dispatches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.DeliverDispatchRequest  true  "Cantidades entregadas y timestamp opcional"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dispatches/{id}/deliver [patch]
func (h *DispatchHandler) Deliver(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.DeliverDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Delivered) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delivered no puede estar vacío"})
	}
	if err := h.uc.Deliver(c.Context(), id, in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
