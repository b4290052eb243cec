package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
)

// StoreUseCase gestión del directorio de tiendas.
type StoreUseCase struct {
	storeRepo    repository.StoreRepository
	facilityRepo repository.FacilityRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository, facilityRepo repository.FacilityRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, facilityRepo: facilityRepo}
}

// Create registra una tienda. Si trae planta asignada, la planta debe existir;
// sin planta la tienda queda fuera de los totales de todas las plantas.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FacilityID != nil && *in.FacilityID != "" {
		if _, err := uc.facilityRepo.GetByID(ctx, *in.FacilityID); err != nil {
			return nil, err
		}
	}
	store := &entity.Store{
		ID:         uuid.New().String(),
		Name:       in.Name,
		FacilityID: in.FacilityID,
		CreatedAt:  time.Now(),
	}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return storeToDTO(store), nil
}

// List devuelve el directorio completo de tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreDTO, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreDTO, 0, len(stores))
	for i := range stores {
		out = append(out, *storeToDTO(&stores[i]))
	}
	return out, nil
}

// GetByID devuelve una tienda o domain.ErrNotFound.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreDTO, error) {
	store, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return storeToDTO(store), nil
}

func storeToDTO(s *entity.Store) *dto.StoreDTO {
	return &dto.StoreDTO{ID: s.ID, Name: s.Name, FacilityID: s.FacilityID, CreatedAt: s.CreatedAt}
}
