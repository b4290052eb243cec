// Package stock implementa el motor de conciliación de stock: a partir de los
// historiales de producción y de despachos deriva, para una fecha de consulta
// arbitraria, el stock disponible por producto en cada planta.
//
// El motor es puro y sin estado: no hace I/O, no cachea y no muta sus entradas.
// Cada llamada recalcula desde cero sobre colecciones ya materializadas.
package stock

import (
	"fmt"
	"strings"
	"time"
)

// DateKey fecha calendario canónica en formato YYYY-MM-DD. Se usa como unidad
// de agregación y comparación (el orden lexicográfico coincide con el
// cronológico), descartando la hora del día.
type DateKey string

// TimestampFormat variante reconocida del timestamp de entrega.
// El backend administrado guarda deliveredAt como texto libre en tres formas
// distintas según el cliente que registró la entrega.
type TimestampFormat int

const (
	// FormatUnrecognized el texto no corresponde a ninguna forma aceptada.
	FormatUnrecognized TimestampFormat = iota
	// FormatSlashLocale forma locale: "DD/MM/YYYY, HH:MM:SS".
	FormatSlashLocale
	// FormatISOWithTime ISO-8601 con separador T: "YYYY-MM-DDTHH:MM:SS".
	FormatISOWithTime
	// FormatSpaceSeparated fecha y hora separadas por espacio: "YYYY-MM-DD HH:MM:SS".
	FormatSpaceSeparated
)

// String nombre legible de la variante (para logs).
func (f TimestampFormat) String() string {
	switch f {
	case FormatSlashLocale:
		return "slash_locale"
	case FormatISOWithTime:
		return "iso_with_time"
	case FormatSpaceSeparated:
		return "space_separated"
	default:
		return "unrecognized"
	}
}

const dateKeyLayout = "2006-01-02"

// layout de parseo por variante.
var formatLayouts = map[TimestampFormat]string{
	FormatSlashLocale:    "02/01/2006, 15:04:05",
	FormatISOWithTime:    "2006-01-02T15:04:05",
	FormatSpaceSeparated: "2006-01-02 15:04:05",
}

// DetectTimestampFormat clasifica el texto en una de las variantes por su
// estructura, sin parsearlo todavía.
func DetectTimestampFormat(raw string) TimestampFormat {
	s := strings.TrimSpace(raw)
	switch {
	case strings.Contains(s, "/") && strings.Contains(s, ","):
		return FormatSlashLocale
	case len(s) >= 11 && s[10] == 'T':
		return FormatISOWithTime
	case len(s) >= 11 && s[10] == ' ':
		return FormatSpaceSeparated
	default:
		return FormatUnrecognized
	}
}

// NormalizeDeliveryDate convierte el timestamp de entrega (texto libre) en su
// DateKey canónica. No hay conversión de zona horaria: la fecha se toma
// literal. Un texto no reconocido nunca es fatal: devuelve FormatUnrecognized
// y el caller debe tratarlo igual que "excluido de los totales".
func NormalizeDeliveryDate(raw string) (DateKey, TimestampFormat) {
	format := DetectTimestampFormat(raw)
	if format == FormatUnrecognized {
		return "", FormatUnrecognized
	}
	t, err := time.Parse(formatLayouts[format], strings.TrimSpace(raw))
	if err != nil {
		return "", FormatUnrecognized
	}
	return DateKey(t.Format(dateKeyLayout)), format
}

// ParseDateKey valida que s sea una fecha calendario YYYY-MM-DD.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("fecha inválida %q (se espera YYYY-MM-DD): %w", s, err)
	}
	return DateKey(t.Format(dateKeyLayout)), nil
}
