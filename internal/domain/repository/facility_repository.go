package repository

import (
	"context"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// FacilityRepository acceso al directorio de plantas de producción.
type FacilityRepository interface {
	// List devuelve todas las plantas.
	List(ctx context.Context) ([]entity.Facility, error)

	// GetByID devuelve una planta o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.Facility, error)

	// Create inserta una planta.
	Create(ctx context.Context, facility *entity.Facility) error
}
