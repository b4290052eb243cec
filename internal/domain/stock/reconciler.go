package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// Niveles de salud de stock (solo presentación, no es regla de negocio).
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthFair      = "fair"
	HealthLow       = "low"
	HealthCritical  = "critical"
)

var (
	hundred   = decimal.NewFromInt(100)
	pctBounds = []struct {
		min   int64
		level string
	}{
		{80, HealthExcellent},
		{60, HealthGood},
		{40, HealthFair},
		{20, HealthLow},
	}
)

// ClassifyHealth clasifica el porcentaje restante en un nivel de salud.
// Cotas inferiores inclusivas: ≥80 excellent, ≥60 good, ≥40 fair, ≥20 low,
// el resto critical.
func ClassifyHealth(percentRemaining decimal.Decimal) string {
	for _, b := range pctBounds {
		if percentRemaining.GreaterThanOrEqual(decimal.NewFromInt(b.min)) {
			return b.level
		}
	}
	return HealthCritical
}

// Reconciled cifras conciliadas de un producto.
type Reconciled struct {
	Produced         decimal.Decimal
	Dispatched       decimal.Decimal
	Available        decimal.Decimal
	PercentRemaining decimal.Decimal
}

// Reconcile deriva el disponible por producto a partir de los dos totales:
// available = max(0, produced − dispatched), nunca negativo aunque lo
// despachado exceda lo producido; percent = available/produced×100 si hay
// producción, 0 si no. Opera sobre la unión de claves de ambos mapas.
func Reconcile(produced, dispatched Totals) map[entity.ProductKey]Reconciled {
	out := make(map[entity.ProductKey]Reconciled, len(produced))
	for key := range produced {
		out[key] = reconcileOne(produced[key], dispatched[key])
	}
	for key := range dispatched {
		if _, seen := out[key]; !seen {
			out[key] = reconcileOne(produced[key], dispatched[key])
		}
	}
	return out
}

func reconcileOne(produced, dispatched decimal.Decimal) Reconciled {
	available := produced.Sub(dispatched)
	if available.IsNegative() {
		available = decimal.Zero
	}
	percent := decimal.Zero
	if produced.IsPositive() {
		percent = available.Div(produced).Mul(hundred)
	}
	return Reconciled{
		Produced:         produced,
		Dispatched:       dispatched,
		Available:        available,
		PercentRemaining: percent,
	}
}
