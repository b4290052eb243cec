package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// dailyProduced suma el rendimiento por producto de los registros de la planta
// con fecha == asOf exacta. Suma cruda no negativa, sin clamp.
func dailyProduced(
	records []entity.ProductionRecord,
	facilityID string,
	asOf DateKey,
	policy ApprovalPolicy,
) Totals {
	totals := make(Totals)
	for _, r := range records {
		if r.FacilityID != facilityID || DateKey(r.Date) != asOf {
			continue
		}
		if !countsUnderPolicy(r, policy) {
			continue
		}
		for key, qty := range r.Yields {
			totals[key] = totals[key].Add(qty)
		}
	}
	return totals
}

// dailyDispatched suma la cantidad entregada por producto de las solicitudes
// delivered cuya fecha de entrega normalizada es == asOf exacta.
func dailyDispatched(
	requests []entity.DispatchRequest,
	stores StoreIndex,
	facilityID string,
	asOf DateKey,
) Totals {
	totals := make(Totals)
	for _, req := range requests {
		if req.Status != entity.DispatchDelivered {
			continue
		}
		if stores[req.StoreID] != facilityID {
			continue
		}
		date, format := NormalizeDeliveryDate(req.DeliveredAt)
		if format == FormatUnrecognized || date != asOf {
			continue
		}
		for key, qty := range req.Delivered {
			totals[key] = totals[key].Add(qty)
		}
	}
	return totals
}

// approvalCounts tally de registros de producción de (planta, fecha exacta)
// por estado de aprobación. Es señal de calidad de datos: no condiciona la
// inclusión en los acumulados (eso lo decide ApprovalPolicy).
func approvalCounts(
	records []entity.ProductionRecord,
	facilityID string,
	asOf DateKey,
) (approved, pending int) {
	for _, r := range records {
		if r.FacilityID != facilityID || DateKey(r.Date) != asOf {
			continue
		}
		switch r.ApprovalStatus {
		case entity.ApprovalApproved:
			approved++
		case entity.ApprovalPending:
			pending++
		}
	}
	return approved, pending
}

// dailyWastage merma total de los registros de la planta del día exacto.
// Se suma sobre todos los registros sin importar la política de aprobación:
// igual que el conteo de aprobaciones, es una métrica informativa.
func dailyWastage(records []entity.ProductionRecord, facilityID string, asOf DateKey) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.FacilityID != facilityID || DateKey(r.Date) != asOf {
			continue
		}
		total = total.Add(r.TotalWastage())
	}
	return total
}

// ComputeStockSnapshot computa la foto de stock de una planta a una fecha:
// normaliza timestamps, filtra y acumula, concilia con clamp a cero y adjunta
// los deltas del día y el conteo de aprobaciones. Devuelve siempre un
// snapshot válido: sin eventos para la planta/fecha el resultado es todo cero,
// nunca un error.
func ComputeStockSnapshot(
	facilityID string,
	asOf DateKey,
	records []entity.ProductionRecord,
	requests []entity.DispatchRequest,
	stores []entity.Store,
	policy ApprovalPolicy,
) entity.StockSnapshot {
	idx := BuildStoreIndex(stores)

	produced := CumulativeProduced(records, facilityID, asOf, policy)
	dispatched := CumulativeDispatched(requests, idx, facilityID, asOf)
	reconciled := Reconcile(produced, dispatched)

	todayProduced := dailyProduced(records, facilityID, asOf, policy)
	todayDispatched := dailyDispatched(requests, idx, facilityID, asOf)

	products := make(map[entity.ProductKey]entity.ProductStock, len(reconciled))
	for key, rec := range reconciled {
		products[key] = entity.ProductStock{
			ProducedToday:       todayProduced[key],
			DispatchedToday:     todayDispatched[key],
			AvailableCumulative: rec.Available,
			PercentRemaining:    rec.PercentRemaining,
			Health:              ClassifyHealth(rec.PercentRemaining),
		}
	}

	totalProducedToday := decimal.Zero
	for _, qty := range todayProduced {
		totalProducedToday = totalProducedToday.Add(qty)
	}

	approved, pending := approvalCounts(records, facilityID, asOf)

	return entity.StockSnapshot{
		FacilityID:         facilityID,
		AsOfDate:           string(asOf),
		Products:           products,
		TotalProducedToday: totalProducedToday,
		TotalWastageToday:  dailyWastage(records, facilityID, asOf),
		ApprovedCount:      approved,
		PendingCount:       pending,
	}
}

// ComputeAllFacilitySnapshots computa el snapshot de cada planta del
// directorio a la misma fecha, en el orden recibido.
func ComputeAllFacilitySnapshots(
	asOf DateKey,
	facilities []entity.Facility,
	records []entity.ProductionRecord,
	requests []entity.DispatchRequest,
	stores []entity.Store,
	policy ApprovalPolicy,
) []entity.StockSnapshot {
	snapshots := make([]entity.StockSnapshot, 0, len(facilities))
	for _, f := range facilities {
		snapshots = append(snapshots, ComputeStockSnapshot(f.ID, asOf, records, requests, stores, policy))
	}
	return snapshots
}
