package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una solicitud de despacho.
// Flujo: pending → approved → {fulfilled | partially_fulfilled} → delivered.
// rejected es alcanzable desde cualquier estado previo a la entrega.
// Solo delivered es terminal y contable para la conciliación de stock.
const (
	DispatchPending            = "pending"
	DispatchApproved           = "approved"
	DispatchFulfilled          = "fulfilled"
	DispatchPartiallyFulfilled = "partially_fulfilled"
	DispatchDelivered          = "delivered"
	DispatchRejected           = "rejected"
)

// dispatchTransitions transiciones válidas del ciclo de vida.
var dispatchTransitions = map[string][]string{
	DispatchPending:            {DispatchApproved, DispatchRejected},
	DispatchApproved:           {DispatchFulfilled, DispatchPartiallyFulfilled, DispatchRejected},
	DispatchFulfilled:          {DispatchDelivered, DispatchRejected},
	DispatchPartiallyFulfilled: {DispatchDelivered, DispatchRejected},
	DispatchDelivered:          {}, // terminal
	DispatchRejected:           {}, // terminal
}

// CanTransitionDispatch indica si el cambio de estado from → to es válido.
func CanTransitionDispatch(from, to string) bool {
	for _, next := range dispatchTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsDispatchStatus indica si s es un estado conocido del ciclo de vida.
func IsDispatchStatus(s string) bool {
	_, ok := dispatchTransitions[s]
	return ok
}

// DispatchRequest solicitud de stock originada en una tienda.
// Delivered y DeliveredAt solo se llenan al marcar la entrega; DeliveredAt es
// texto libre (el backend administrado lo guarda en tres formatos distintos,
// ver stock.NormalizeDeliveryDate).
type DispatchRequest struct {
	ID          string
	StoreID     string
	Requested   map[ProductKey]decimal.Decimal
	Delivered   map[ProductKey]decimal.Decimal
	Status      string
	DeliveredAt string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
