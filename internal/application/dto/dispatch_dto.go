package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDispatchRequest solicitud de stock originada en una tienda.
type CreateDispatchRequest struct {
	StoreID   string                     `json:"store_id"`
	Requested map[string]decimal.Decimal `json:"requested"`
}

// UpdateDispatchStatusRequest transición de estado de la solicitud
// (approved, fulfilled, partially_fulfilled, rejected).
type UpdateDispatchStatusRequest struct {
	Status string `json:"status"`
}

// DeliverDispatchRequest marca la entrega de una solicitud. DeliveredAt es
// opcional: vacío usa la hora del servidor.
type DeliverDispatchRequest struct {
	Delivered   map[string]decimal.Decimal `json:"delivered"`
	DeliveredAt string                     `json:"delivered_at"`
}

// DispatchRequestDTO solicitud de despacho en respuestas.
type DispatchRequestDTO struct {
	ID          string                     `json:"id"`
	StoreID     string                     `json:"store_id"`
	Requested   map[string]decimal.Decimal `json:"requested"`
	Delivered   map[string]decimal.Decimal `json:"delivered,omitempty"`
	Status      string                     `json:"status"`
	DeliveredAt string                     `json:"delivered_at,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}
