package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/report"
)

// ReportHandler maneja la descarga del informe PDF de stock (protegido).
type ReportHandler struct {
	uc *report.SnapshotReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SnapshotReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadSnapshotPDF godoc
// @Summary      Descargar informe PDF de stock de una planta
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la planta"
// @Param        date  query  string  false  "Fecha de consulta YYYY-MM-DD (default: hoy)"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facilities/{id}/snapshot/pdf [get]
func (h *ReportHandler) DownloadSnapshotPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	asOf, err := asOfFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	pdfBytes, filename, err := h.uc.DownloadSnapshotPDF(c.Context(), id, asOf)
	if err != nil {
		return domainError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
