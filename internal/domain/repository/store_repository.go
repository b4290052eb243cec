package repository

import (
	"context"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// StoreRepository acceso al directorio de tiendas.
type StoreRepository interface {
	// List devuelve el directorio completo de tiendas (mapeadas o no).
	List(ctx context.Context) ([]entity.Store, error)

	// GetByID devuelve una tienda o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.Store, error)

	// Create inserta una tienda; FacilityID nil la deja sin planta asignada.
	Create(ctx context.Context, store *entity.Store) error
}
