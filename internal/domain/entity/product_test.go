package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

func TestNormalizeProductKey(t *testing.T) {
	cases := map[string]entity.ProductKey{
		"Yogurt":            "yogurt",
		"Arequipe de Café":  "arequipe_de_cafe",
		"  KUMIS  ":         "kumis",
		"Queso   Campesino": "queso_campesino",
		"Limón":             "limon",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.NormalizeProductKey(in), "entrada: %q", in)
	}
}

func TestProductionRecord_Totales(t *testing.T) {
	r := entity.ProductionRecord{
		Yields: map[entity.ProductKey]decimal.Decimal{
			"yogurt": decimal.NewFromInt(40),
			"kumis":  decimal.NewFromInt(10),
		},
		Wastage: map[entity.RawMaterial]decimal.Decimal{
			entity.RawMaterialLeche:  decimal.NewFromInt(3),
			entity.RawMaterialAzucar: decimal.NewFromInt(1),
		},
	}
	assert.True(t, r.TotalYield().Equal(decimal.NewFromInt(50)))
	assert.True(t, r.TotalWastage().Equal(decimal.NewFromInt(4)))
}
