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

// FacilityUseCase gestión del directorio de plantas de producción.
type FacilityUseCase struct {
	facilityRepo repository.FacilityRepository
}

// NewFacilityUseCase construye el caso de uso.
func NewFacilityUseCase(facilityRepo repository.FacilityRepository) *FacilityUseCase {
	return &FacilityUseCase{facilityRepo: facilityRepo}
}

// Create registra una planta nueva.
func (uc *FacilityUseCase) Create(ctx context.Context, in dto.CreateFacilityRequest) (*dto.FacilityDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	facility := &entity.Facility{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.facilityRepo.Create(ctx, facility); err != nil {
		return nil, err
	}
	return facilityToDTO(facility), nil
}

// List devuelve todas las plantas.
func (uc *FacilityUseCase) List(ctx context.Context) ([]dto.FacilityDTO, error) {
	facilities, err := uc.facilityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacilityDTO, 0, len(facilities))
	for i := range facilities {
		out = append(out, *facilityToDTO(&facilities[i]))
	}
	return out, nil
}

// GetByID devuelve una planta o domain.ErrNotFound.
func (uc *FacilityUseCase) GetByID(ctx context.Context, id string) (*dto.FacilityDTO, error) {
	facility, err := uc.facilityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return facilityToDTO(facility), nil
}

func facilityToDTO(f *entity.Facility) *dto.FacilityDTO {
	return &dto.FacilityDTO{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt}
}
