package entity

import "github.com/shopspring/decimal"

// ProductStock cifras conciliadas de un producto dentro de un StockSnapshot.
type ProductStock struct {
	ProducedToday       decimal.Decimal
	DispatchedToday     decimal.Decimal
	AvailableCumulative decimal.Decimal
	PercentRemaining    decimal.Decimal
	Health              string // excellent | good | fair | low | critical
}

// StockSnapshot resultado de la conciliación de stock de una planta a una fecha.
// Es un valor derivado y efímero: se recalcula en cada consulta desde los
// eventos fuente y nunca se persiste.
type StockSnapshot struct {
	FacilityID         string
	AsOfDate           string // YYYY-MM-DD
	Products           map[ProductKey]ProductStock
	TotalProducedToday decimal.Decimal
	TotalWastageToday  decimal.Decimal
	ApprovedCount      int
	PendingCount       int
}
