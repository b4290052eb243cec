package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Produccion-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeDeliveryDate
// ──────────────────────────────────────────────────────────────────────────────

// Las tres formas aceptadas deben normalizar a la misma fecha canónica.
func TestNormalizeDeliveryDate_TresFormasEquivalentes(t *testing.T) {
	cases := []struct {
		raw    string
		format stock.TimestampFormat
	}{
		{"31/12/2025, 00:29:07", stock.FormatSlashLocale},
		{"2025-12-31T00:29:07", stock.FormatISOWithTime},
		{"2025-12-31 00:29:07", stock.FormatSpaceSeparated},
	}
	for _, tc := range cases {
		date, format := stock.NormalizeDeliveryDate(tc.raw)
		assert.Equal(t, stock.DateKey("2025-12-31"), date, "entrada: %q", tc.raw)
		assert.Equal(t, tc.format, format, "entrada: %q", tc.raw)
	}
}

// La fecha se toma literal, sin conversión de zona horaria: la hora se descarta.
func TestNormalizeDeliveryDate_DescartaHoraSinConvertirZona(t *testing.T) {
	date, format := stock.NormalizeDeliveryDate("01/01/2025, 23:59:59")
	require.Equal(t, stock.FormatSlashLocale, format)
	assert.Equal(t, stock.DateKey("2025-01-01"), date)
}

// Entradas no reconocidas nunca son fatales: devuelven FormatUnrecognized.
func TestNormalizeDeliveryDate_NoReconocido(t *testing.T) {
	cases := []string{
		"",
		"ayer",
		"2025/12/31 00:29:07",   // slashes sin coma
		"31-12-2025, 00:29:07",  // guiones en forma locale
		"2025-12-31",            // sin hora
		"32/01/2025, 10:00:00",  // día inexistente
		"2025-13-01T00:00:00",   // mes inexistente
		"timestamp: 1735603747", // epoch
	}
	for _, raw := range cases {
		_, format := stock.NormalizeDeliveryDate(raw)
		assert.Equal(t, stock.FormatUnrecognized, format, "entrada: %q", raw)
	}
}

// La forma locale acepta día y mes sin cero a la izquierda.
func TestNormalizeDeliveryDate_LocaleSinCeros(t *testing.T) {
	date, format := stock.NormalizeDeliveryDate("1/3/2025, 08:05:00")
	require.Equal(t, stock.FormatSlashLocale, format)
	assert.Equal(t, stock.DateKey("2025-03-01"), date)
}

// ──────────────────────────────────────────────────────────────────────────────
// DetectTimestampFormat / ParseDateKey
// ──────────────────────────────────────────────────────────────────────────────

func TestDetectTimestampFormat_Variantes(t *testing.T) {
	assert.Equal(t, stock.FormatSlashLocale, stock.DetectTimestampFormat("31/12/2025, 00:29:07"))
	assert.Equal(t, stock.FormatISOWithTime, stock.DetectTimestampFormat("2025-12-31T00:29:07"))
	assert.Equal(t, stock.FormatSpaceSeparated, stock.DetectTimestampFormat("2025-12-31 00:29:07"))
	assert.Equal(t, stock.FormatUnrecognized, stock.DetectTimestampFormat("no-es-fecha"))
}

func TestParseDateKey(t *testing.T) {
	key, err := stock.ParseDateKey("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, stock.DateKey("2025-01-31"), key)

	_, err = stock.ParseDateKey("31/01/2025")
	assert.Error(t, err, "solo se acepta YYYY-MM-DD")

	_, err = stock.ParseDateKey("2025-02-30")
	assert.Error(t, err, "fecha inexistente debe rechazarse")
}

// El orden lexicográfico de DateKey coincide con el cronológico.
func TestDateKey_OrdenLexicografico(t *testing.T) {
	assert.True(t, stock.DateKey("2024-12-31") < stock.DateKey("2025-01-01"))
	assert.True(t, stock.DateKey("2025-01-09") < stock.DateKey("2025-01-10"))
}
