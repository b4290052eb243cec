package repository

import (
	"context"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// ProductionRecordRepository acceso al historial de registros de producción.
// El motor de conciliación consume la colección completa (List); el filtrado
// por planta/fecha lo hace el motor en memoria, no la consulta.
type ProductionRecordRepository interface {
	// List devuelve el historial completo de registros de producción.
	List(ctx context.Context) ([]entity.ProductionRecord, error)

	// ListByFacility devuelve los registros de una planta (listados de gestión).
	ListByFacility(ctx context.Context, facilityID string) ([]entity.ProductionRecord, error)

	// GetByID devuelve un registro o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error)

	// Create inserta el cierre de producción de una planta/fecha.
	Create(ctx context.Context, record *entity.ProductionRecord) error

	// UpdateApprovalStatus cambia el estado de aprobación del registro.
	UpdateApprovalStatus(ctx context.Context, id, status string) error
}
