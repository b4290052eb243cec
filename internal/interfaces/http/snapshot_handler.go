package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/stockquery"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
)

// SnapshotHandler maneja las consultas de stock conciliado (protegido).
type SnapshotHandler struct {
	uc *stockquery.SnapshotUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *stockquery.SnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// asOfFromQuery lee ?date=YYYY-MM-DD; vacío usa la fecha del servidor.
func asOfFromQuery(c *fiber.Ctx) (stock.DateKey, error) {
	raw := c.Query("date")
	if raw == "" {
		raw = time.Now().Format("2006-01-02")
	}
	return stock.ParseDateKey(raw)
}

// GetByFacility godoc
// @Summary      Snapshot de stock de una planta a una fecha
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la planta"
// @Param        date  query  string  false  "Fecha de consulta YYYY-MM-DD (default: hoy)"
// @Success      200   {object}  dto.StockSnapshotDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facilities/{id}/snapshot [get]
func (h *SnapshotHandler) GetByFacility(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	asOf, err := asOfFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.GetSnapshot(c.Context(), id, asOf)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetAll godoc
// @Summary      Snapshot de stock de todas las plantas a una fecha
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha de consulta YYYY-MM-DD (default: hoy)"
// @Success      200   {array}   dto.StockSnapshotDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/snapshots [get]
func (h *SnapshotHandler) GetAll(c *fiber.Ctx) error {
	asOf, err := asOfFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.GetAllSnapshots(c.Context(), asOf)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
