// Package report genera el informe PDF del snapshot de stock de una planta.
// Es un colaborador de presentación: consume el snapshot ya conciliado y no
// toca la lógica del motor.
package report

import (
	"context"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// SnapshotPDFGenerator renderiza el snapshot como PDF.
type SnapshotPDFGenerator interface {
	GenerateSnapshotPDF(ctx context.Context, facility *entity.Facility, snap dto.StockSnapshotDTO) ([]byte, error)
}
