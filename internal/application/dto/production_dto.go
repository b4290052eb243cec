package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductionRequest cierre de producción de una planta en una fecha.
// Yields usa nombres de producto libres (se normalizan a ProductKey);
// las cantidades son rendimiento finalizado, ya neto de merma.
type RegisterProductionRequest struct {
	FacilityID string                     `json:"facility_id"`
	Date       string                     `json:"date"` // YYYY-MM-DD
	Yields     map[string]decimal.Decimal `json:"yields"`
	Wastage    map[string]decimal.Decimal `json:"wastage"` // por categoría de materia prima
}

// UpdateApprovalRequest cambio de estado de aprobación de un registro.
type UpdateApprovalRequest struct {
	Status string `json:"status"` // approved | rejected
}

// ProductionRecordDTO registro de producción en respuestas.
type ProductionRecordDTO struct {
	ID             string                     `json:"id"`
	FacilityID     string                     `json:"facility_id"`
	Date           string                     `json:"date"`
	Yields         map[string]decimal.Decimal `json:"yields"`
	Wastage        map[string]decimal.Decimal `json:"wastage"`
	ApprovalStatus string                     `json:"approval_status"`
	CreatedBy      string                     `json:"created_by"`
	CreatedAt      time.Time                  `json:"created_at"`
}
