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
)

// layout con el que este backend estampa deliveredAt. Los otros dos formatos
// aceptados provienen de clientes legados; ver stock.NormalizeDeliveryDate.
const deliveredAtLayout = "2006-01-02 15:04:05"

// DispatchUseCase ciclo de vida de solicitudes de despacho:
// pending → approved → {fulfilled | partially_fulfilled} → delivered,
// con rejected alcanzable antes de la entrega. Toda transición pasa por el
// guard de la máquina de estados; la entrega estampa deliveredAt.
type DispatchUseCase struct {
	dispatchRepo repository.DispatchRequestRepository
	storeRepo    repository.StoreRepository
	now          func() time.Time
}

// NewDispatchUseCase construye el caso de uso.
func NewDispatchUseCase(
	dispatchRepo repository.DispatchRequestRepository,
	storeRepo repository.StoreRepository,
) *DispatchUseCase {
	return &DispatchUseCase{dispatchRepo: dispatchRepo, storeRepo: storeRepo, now: time.Now}
}

// Create registra una solicitud nueva en estado pending.
func (uc *DispatchUseCase) Create(ctx context.Context, in dto.CreateDispatchRequest) (*dto.DispatchRequestDTO, error) {
	if in.StoreID == "" || len(in.Requested) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.storeRepo.GetByID(ctx, in.StoreID); err != nil {
		return nil, err
	}
	requested := make(map[entity.ProductKey]decimal.Decimal, len(in.Requested))
	for name, qty := range in.Requested {
		if !qty.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		requested[entity.NormalizeProductKey(name)] = qty
	}

	now := uc.now()
	req := &entity.DispatchRequest{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Requested: requested,
		Status:    entity.DispatchPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.dispatchRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return dispatchToDTO(req), nil
}

// UpdateStatus aplica una transición de estado no terminal (approved,
// fulfilled, partially_fulfilled, rejected). La entrega va por Deliver.
func (uc *DispatchUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateDispatchStatusRequest) error {
	if !entity.IsDispatchStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if in.Status == entity.DispatchDelivered {
		// delivered requiere cantidades y timestamp: endpoint dedicado
		return domain.ErrInvalidInput
	}
	req, err := uc.dispatchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !entity.CanTransitionDispatch(req.Status, in.Status) {
		return domain.ErrInvalidTransition
	}
	return uc.dispatchRepo.UpdateStatus(ctx, id, in.Status)
}

// Deliver marca la entrega de una solicitud fulfilled o partially_fulfilled:
// estado delivered (terminal), cantidades entregadas y timestamp textual.
// Solo a partir de aquí la solicitud cuenta en la conciliación de stock.
func (uc *DispatchUseCase) Deliver(ctx context.Context, id string, in dto.DeliverDispatchRequest) error {
	if len(in.Delivered) == 0 {
		return domain.ErrInvalidInput
	}
	req, err := uc.dispatchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status == entity.DispatchDelivered {
		return domain.ErrAlreadyDelivered
	}
	if !entity.CanTransitionDispatch(req.Status, entity.DispatchDelivered) {
		return domain.ErrInvalidTransition
	}

	delivered := make(map[entity.ProductKey]decimal.Decimal, len(in.Delivered))
	for name, qty := range in.Delivered {
		if qty.IsNegative() {
			return domain.ErrInvalidInput
		}
		delivered[entity.NormalizeProductKey(name)] = qty
	}

	deliveredAt := in.DeliveredAt
	if deliveredAt == "" {
		deliveredAt = uc.now().Format(deliveredAtLayout)
	}
	return uc.dispatchRepo.MarkDelivered(ctx, id, delivered, deliveredAt)
}

// ListByStore devuelve las solicitudes de una tienda.
func (uc *DispatchUseCase) ListByStore(ctx context.Context, storeID string) ([]dto.DispatchRequestDTO, error) {
	requests, err := uc.dispatchRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DispatchRequestDTO, 0, len(requests))
	for i := range requests {
		out = append(out, *dispatchToDTO(&requests[i]))
	}
	return out, nil
}

func dispatchToDTO(r *entity.DispatchRequest) *dto.DispatchRequestDTO {
	requested := make(map[string]decimal.Decimal, len(r.Requested))
	for key, qty := range r.Requested {
		requested[string(key)] = qty
	}
	var delivered map[string]decimal.Decimal
	if len(r.Delivered) > 0 {
		delivered = make(map[string]decimal.Decimal, len(r.Delivered))
		for key, qty := range r.Delivered {
			delivered[string(key)] = qty
		}
	}
	return &dto.DispatchRequestDTO{
		ID:          r.ID,
		StoreID:     r.StoreID,
		Requested:   requested,
		Delivered:   delivered,
		Status:      r.Status,
		DeliveredAt: r.DeliveredAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
