package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de aprobación de un registro de producción.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// ProductionRecord representa el cierre de producción de una planta en una fecha.
// Yields es el rendimiento finalizado por producto (neto de merma, nunca negativo).
// Wastage son las métricas de merma por categoría de materia prima.
// El registro es inmutable para el motor de conciliación: solo el flujo de
// aprobación (externo al motor) cambia ApprovalStatus.
type ProductionRecord struct {
	ID             string
	FacilityID     string
	Date           string // fecha calendario YYYY-MM-DD
	Yields         map[ProductKey]decimal.Decimal
	Wastage        map[RawMaterial]decimal.Decimal
	ApprovalStatus string
	CreatedBy      string
	CreatedAt      time.Time
}

// TotalYield suma el rendimiento finalizado de todos los productos del registro.
func (r ProductionRecord) TotalYield() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range r.Yields {
		total = total.Add(qty)
	}
	return total
}

// TotalWastage suma la merma de todas las categorías de materia prima.
func (r ProductionRecord) TotalWastage() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range r.Wastage {
		total = total.Add(qty)
	}
	return total
}
