package dto

import "time"

// CreateFacilityRequest alta de una planta de producción.
type CreateFacilityRequest struct {
	Name string `json:"name"`
}

// FacilityDTO planta en respuestas.
type FacilityDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
