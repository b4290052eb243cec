package entity

import "time"

// Facility representa una planta de producción. Cada planta produce lotes
// diarios de producto terminado que luego se despachan a las tiendas asociadas.
type Facility struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
