package report

import (
	"context"
	"fmt"

	"github.com/jcardenas/Produccion-api/internal/application/stockquery"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
)

// SnapshotReportUseCase genera el informe PDF diario de stock de una planta.
type SnapshotReportUseCase struct {
	snapshots    *stockquery.SnapshotUseCase
	facilityRepo repository.FacilityRepository
	generator    SnapshotPDFGenerator
}

// NewSnapshotReportUseCase construye el caso de uso.
func NewSnapshotReportUseCase(
	snapshots *stockquery.SnapshotUseCase,
	facilityRepo repository.FacilityRepository,
	generator SnapshotPDFGenerator,
) *SnapshotReportUseCase {
	return &SnapshotReportUseCase{
		snapshots:    snapshots,
		facilityRepo: facilityRepo,
		generator:    generator,
	}
}

// DownloadSnapshotPDF computa el snapshot de la planta a la fecha y lo
// renderiza como PDF. Retorna domain.ErrNotFound si la planta no existe.
func (uc *SnapshotReportUseCase) DownloadSnapshotPDF(
	ctx context.Context,
	facilityID string,
	asOf stock.DateKey,
) (pdfBytes []byte, filename string, err error) {
	facility, err := uc.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener planta: %w", err)
	}

	snap, err := uc.snapshots.GetSnapshot(ctx, facilityID, asOf)
	if err != nil {
		return nil, "", fmt.Errorf("report: computar snapshot: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSnapshotPDF(ctx, facility, snap)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar PDF: %w", err)
	}

	filename = fmt.Sprintf("stock_%s_%s.pdf", facility.ID, asOf)
	return pdfBytes, filename, nil
}
