package dto

import "time"

// CreateStoreRequest alta de una tienda. FacilityID nil deja la tienda sin
// planta asignada (sus despachos no cuentan para ninguna planta).
type CreateStoreRequest struct {
	Name       string  `json:"name"`
	FacilityID *string `json:"facility_id"`
}

// StoreDTO tienda en respuestas.
type StoreDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FacilityID *string   `json:"facility_id"`
	CreatedAt  time.Time `json:"created_at"`
}
