package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// marshalQuantities serializa un mapa producto → cantidad a JSONB.
// nil produce NULL (ej. delivered antes de la entrega).
func marshalQuantities(m map[entity.ProductKey]decimal.Decimal) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal cantidades: %w", err)
	}
	return b, nil
}

// unmarshalQuantities deserializa el JSONB producto → cantidad. NULL produce nil.
func unmarshalQuantities(b []byte) (map[entity.ProductKey]decimal.Decimal, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[entity.ProductKey]decimal.Decimal
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal cantidades: %w", err)
	}
	return m, nil
}

// marshalWastage serializa el mapa de merma por materia prima a JSONB.
func marshalWastage(m map[entity.RawMaterial]decimal.Decimal) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal merma: %w", err)
	}
	return b, nil
}

// unmarshalWastage deserializa el JSONB de merma. NULL produce nil.
func unmarshalWastage(b []byte) (map[entity.RawMaterial]decimal.Decimal, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[entity.RawMaterial]decimal.Decimal
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal merma: %w", err)
	}
	return m, nil
}
