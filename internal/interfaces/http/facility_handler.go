package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
)

// FacilityHandler maneja las peticiones HTTP para plantas (protegido).
type FacilityHandler struct {
	uc *usecase.FacilityUseCase
}

// NewFacilityHandler construye el handler.
func NewFacilityHandler(uc *usecase.FacilityUseCase) *FacilityHandler {
	return &FacilityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear planta
// @Tags         facilities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacilityRequest  true  "Datos de la planta"
// @Success      201   {object}  dto.FacilityDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facilities [post]
func (h *FacilityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar plantas
// @Tags         facilities
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FacilityDTO
// @Router       /api/facilities [get]
func (h *FacilityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener planta por ID
// @Tags         facilities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la planta"
// @Success      200  {object}  dto.FacilityDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facilities/{id} [get]
func (h *FacilityHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
