package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// ProductStockDTO cifras conciliadas de un producto en la respuesta del snapshot.
type ProductStockDTO struct {
	ProducedToday       decimal.Decimal `json:"produced_today"`
	DispatchedToday     decimal.Decimal `json:"dispatched_today"`
	AvailableCumulative decimal.Decimal `json:"available_cumulative"`
	PercentRemaining    decimal.Decimal `json:"percent_remaining"` // available/produced × 100, redondeado a 2
	Health              string          `json:"health"`            // excellent | good | fair | low | critical
}

// StockSnapshotDTO respuesta de GET /api/facilities/:id/snapshot.
// Foto de stock de una planta a la fecha consultada: disponible acumulado con
// clamp a cero por producto, deltas del día y conteo de aprobaciones.
type StockSnapshotDTO struct {
	FacilityID         string                     `json:"facility_id"`
	AsOfDate           string                     `json:"as_of_date"` // YYYY-MM-DD
	Products           map[string]ProductStockDTO `json:"products"`
	TotalProducedToday decimal.Decimal            `json:"total_produced_today"`
	TotalWastageToday  decimal.Decimal            `json:"total_wastage_today"`
	ApprovedCount      int                        `json:"approved_count"`
	PendingCount       int                        `json:"pending_count"`
}

// NewStockSnapshotDTO convierte el snapshot de dominio en su DTO de respuesta,
// redondeando el porcentaje a 2 decimales para presentación.
func NewStockSnapshotDTO(snap entity.StockSnapshot) StockSnapshotDTO {
	products := make(map[string]ProductStockDTO, len(snap.Products))
	for key, p := range snap.Products {
		products[string(key)] = ProductStockDTO{
			ProducedToday:       p.ProducedToday,
			DispatchedToday:     p.DispatchedToday,
			AvailableCumulative: p.AvailableCumulative,
			PercentRemaining:    p.PercentRemaining.Round(2),
			Health:              p.Health,
		}
	}
	return StockSnapshotDTO{
		FacilityID:         snap.FacilityID,
		AsOfDate:           snap.AsOfDate,
		Products:           products,
		TotalProducedToday: snap.TotalProducedToday,
		TotalWastageToday:  snap.TotalWastageToday,
		ApprovedCount:      snap.ApprovedCount,
		PendingCount:       snap.PendingCount,
	}
}
