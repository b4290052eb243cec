package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// DispatchRequestRepository acceso al historial de solicitudes de despacho.
type DispatchRequestRepository interface {
	// List devuelve el historial completo de solicitudes.
	List(ctx context.Context) ([]entity.DispatchRequest, error)

	// ListByStore devuelve las solicitudes originadas en una tienda.
	ListByStore(ctx context.Context, storeID string) ([]entity.DispatchRequest, error)

	// GetByID devuelve una solicitud o domain.ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.DispatchRequest, error)

	// Create inserta una solicitud nueva (estado pending).
	Create(ctx context.Context, req *entity.DispatchRequest) error

	// UpdateStatus persiste un cambio de estado ya validado por el caso de uso.
	UpdateStatus(ctx context.Context, id, status string) error

	// MarkDelivered marca la entrega: estado delivered, cantidades entregadas
	// y el timestamp textual deliveredAt.
	MarkDelivered(ctx context.Context, id string, delivered map[entity.ProductKey]decimal.Decimal, deliveredAt string) error
}
