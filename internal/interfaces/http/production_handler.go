package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para registros de producción
// (protegido).
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cierre de producción
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductionRequest  true  "Cierre de producción"
// @Success      201   {object}  dto.ProductionRecordDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}
	var in dto.RegisterProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.FacilityID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "facility_id es requerido"})
	}
	if len(in.Yields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "yields no puede estar vacío"})
	}
	out, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByFacility godoc
// @Summary      Listar registros de producción de una planta
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {array}  dto.ProductionRecordDTO
// @Router       /api/facilities/{id}/production [get]
func (h *ProductionHandler) ListByFacility(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListByFacility(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateApproval godoc
// @Summary      Aprobar o rechazar un registro pendiente
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateApprovalRequest  true  "Nuevo estado (approved | rejected)"
// @Success      204   "Sin contenido"
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/{id}/approval [patch]
func (h *ProductionHandler) UpdateApproval(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	if err := h.uc.UpdateApproval(c.Context(), id, in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
