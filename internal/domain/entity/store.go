package entity

import "time"

// Store representa una tienda (punto de venta) que solicita producto a una planta.
// FacilityID puede ser nil: una tienda sin planta asignada no aporta a los
// totales de ninguna planta (sus despachos se excluyen de la conciliación).
type Store struct {
	ID         string
	Name       string
	FacilityID *string
	CreatedAt  time.Time
}

// BelongsTo indica si la tienda está mapeada a la planta dada.
func (s Store) BelongsTo(facilityID string) bool {
	return s.FacilityID != nil && *s.FacilityID == facilityID
}
