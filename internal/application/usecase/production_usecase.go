package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
)

// ProductionUseCase flujo de registro y aprobación de cierres de producción.
// El registro nace en estado pending; aprobar o rechazar solo cambia
// ApprovalStatus, nunca los rendimientos (el registro es inmutable para el
// motor de conciliación).
type ProductionUseCase struct {
	productionRepo repository.ProductionRecordRepository
	facilityRepo   repository.FacilityRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(
	productionRepo repository.ProductionRecordRepository,
	facilityRepo repository.FacilityRepository,
) *ProductionUseCase {
	return &ProductionUseCase{productionRepo: productionRepo, facilityRepo: facilityRepo}
}

// Register registra el cierre de producción de una planta/fecha.
// Los nombres de producto se normalizan a ProductKey; cantidades negativas
// se rechazan (el rendimiento finalizado ya es neto de merma).
func (uc *ProductionUseCase) Register(ctx context.Context, userID string, in dto.RegisterProductionRequest) (*dto.ProductionRecordDTO, error) {
	if in.FacilityID == "" || len(in.Yields) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := stock.ParseDateKey(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.facilityRepo.GetByID(ctx, in.FacilityID); err != nil {
		return nil, err
	}

	yields := make(map[entity.ProductKey]decimal.Decimal, len(in.Yields))
	for name, qty := range in.Yields {
		if qty.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		yields[entity.NormalizeProductKey(name)] = qty
	}
	wastage := make(map[entity.RawMaterial]decimal.Decimal, len(in.Wastage))
	for category, qty := range in.Wastage {
		if qty.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		wastage[entity.RawMaterial(category)] = qty
	}

	record := &entity.ProductionRecord{
		ID:             uuid.New().String(),
		FacilityID:     in.FacilityID,
		Date:           string(date),
		Yields:         yields,
		Wastage:        wastage,
		ApprovalStatus: entity.ApprovalPending,
		CreatedBy:      userID,
		CreatedAt:      time.Now(),
	}
	if err := uc.productionRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return productionToDTO(record), nil
}

// ListByFacility devuelve los registros de producción de una planta.
func (uc *ProductionUseCase) ListByFacility(ctx context.Context, facilityID string) ([]dto.ProductionRecordDTO, error) {
	records, err := uc.productionRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRecordDTO, 0, len(records))
	for i := range records {
		out = append(out, *productionToDTO(&records[i]))
	}
	return out, nil
}

// UpdateApproval aprueba o rechaza un registro pendiente.
func (uc *ProductionUseCase) UpdateApproval(ctx context.Context, id string, in dto.UpdateApprovalRequest) error {
	if in.Status != entity.ApprovalApproved && in.Status != entity.ApprovalRejected {
		return domain.ErrInvalidInput
	}
	record, err := uc.productionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.ApprovalStatus != entity.ApprovalPending {
		return domain.ErrConflict
	}
	return uc.productionRepo.UpdateApprovalStatus(ctx, id, in.Status)
}

func productionToDTO(r *entity.ProductionRecord) *dto.ProductionRecordDTO {
	yields := make(map[string]decimal.Decimal, len(r.Yields))
	for key, qty := range r.Yields {
		yields[string(key)] = qty
	}
	wastage := make(map[string]decimal.Decimal, len(r.Wastage))
	for category, qty := range r.Wastage {
		wastage[string(category)] = qty
	}
	return &dto.ProductionRecordDTO{
		ID:             r.ID,
		FacilityID:     r.FacilityID,
		Date:           r.Date,
		Yields:         yields,
		Wastage:        wastage,
		ApprovalStatus: r.ApprovalStatus,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
	}
}
