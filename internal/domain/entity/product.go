package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ProductKey identifica un producto del catálogo. Es una clave normalizada
// (minúsculas, sin tildes, espacios como guion bajo) para que los mapas de
// cantidades sean estables entre registros de producción y despachos.
// El catálogo es extensible por datos: no hay campos por producto en el código.
type ProductKey string

// RawMaterial categoría de materia prima para métricas de merma.
type RawMaterial string

// Categorías de materia prima usadas en las métricas de merma de producción.
const (
	RawMaterialLeche  RawMaterial = "leche"
	RawMaterialFruta  RawMaterial = "fruta"
	RawMaterialAzucar RawMaterial = "azucar"
)

// NormalizeProductKey convierte un nombre libre de producto en su ProductKey
// canónica: minúsculas, sin marcas diacríticas y con espacios como "_".
// Ej: "Arequipe de Café" -> "arequipe_de_cafe".
func NormalizeProductKey(name string) ProductKey {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	flat, _, err := transform.String(t, name)
	if err != nil {
		flat = name
	}
	flat = strings.ToLower(strings.TrimSpace(flat))
	flat = strings.Join(strings.Fields(flat), "_")
	return ProductKey(flat)
}
