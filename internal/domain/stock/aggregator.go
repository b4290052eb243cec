package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// Totals totales acumulados por producto.
type Totals map[entity.ProductKey]decimal.Decimal

// ApprovalPolicy política de inclusión de registros de producción según su
// estado de aprobación. El comportamiento histórico del sistema incluye todos
// los registros sin importar la aprobación; el switch existe para poder
// cambiarlo de forma explícita y no silenciosa.
type ApprovalPolicy string

const (
	// ApprovalPolicyIncludeAll cuenta todo registro sin importar aprobación (default).
	ApprovalPolicyIncludeAll ApprovalPolicy = "include_all"
	// ApprovalPolicyApprovedOnly cuenta solo registros aprobados.
	ApprovalPolicyApprovedOnly ApprovalPolicy = "approved_only"
)

// ParseApprovalPolicy valida el valor configurado; vacío usa include_all
// (el comportamiento histórico).
func ParseApprovalPolicy(s string) (ApprovalPolicy, error) {
	switch ApprovalPolicy(s) {
	case "":
		return ApprovalPolicyIncludeAll, nil
	case ApprovalPolicyIncludeAll, ApprovalPolicyApprovedOnly:
		return ApprovalPolicy(s), nil
	default:
		return "", fmt.Errorf("política de aprobación desconocida: %q", s)
	}
}

// countsUnderPolicy indica si el registro aporta rendimiento bajo la política.
func countsUnderPolicy(r entity.ProductionRecord, policy ApprovalPolicy) bool {
	if policy == ApprovalPolicyApprovedOnly {
		return r.ApprovalStatus == entity.ApprovalApproved
	}
	return true
}

// StoreIndex índice tienda → planta. Solo contiene tiendas mapeadas; una
// tienda sin planta asignada simplemente no aparece.
type StoreIndex map[string]string

// BuildStoreIndex construye el índice tienda → planta a partir del directorio
// de tiendas, omitiendo las no mapeadas.
func BuildStoreIndex(stores []entity.Store) StoreIndex {
	idx := make(StoreIndex, len(stores))
	for _, s := range stores {
		if s.FacilityID != nil && *s.FacilityID != "" {
			idx[s.ID] = *s.FacilityID
		}
	}
	return idx
}

// CumulativeProduced suma el rendimiento finalizado por producto de los
// registros de la planta con fecha ≤ asOf. O(P) sobre la colección completa;
// devuelve un mapa nuevo en cada llamada.
func CumulativeProduced(
	records []entity.ProductionRecord,
	facilityID string,
	asOf DateKey,
	policy ApprovalPolicy,
) Totals {
	totals := make(Totals)
	for _, r := range records {
		if r.FacilityID != facilityID || DateKey(r.Date) > asOf {
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

// CumulativeDispatched suma la cantidad entregada por producto de las
// solicitudes en estado delivered, cuya tienda mapea a la planta y cuya fecha
// de entrega normalizada es ≤ asOf. Las solicitudes con timestamp no
// reconocido o con tienda sin planta se excluyen sin error (aportan cero).
// Los estados intermedios fulfilled / partially_fulfilled nunca cuentan.
func CumulativeDispatched(
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
		if format == FormatUnrecognized || date > asOf {
			continue
		}
		for key, qty := range req.Delivered {
			totals[key] = totals[key].Add(qty)
		}
	}
	return totals
}

// UnrecognizedDeliveryTimestamps devuelve los IDs de solicitudes entregadas
// cuyo deliveredAt no corresponde a ninguna forma aceptada. Señal de calidad
// de datos: la capa de orquestación debe loguear un warning porque esas
// entregas quedan subcontadas en todos los totales.
func UnrecognizedDeliveryTimestamps(requests []entity.DispatchRequest) []string {
	var ids []string
	for _, req := range requests {
		if req.Status != entity.DispatchDelivered {
			continue
		}
		if _, format := NormalizeDeliveryDate(req.DeliveredAt); format == FormatUnrecognized {
			ids = append(ids, req.ID)
		}
	}
	return ids
}
