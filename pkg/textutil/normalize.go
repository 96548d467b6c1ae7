// Package textutil normaliza texto para búsquedas insensibles a mayúsculas y
// acentos. Los datos del sistema están en español ("Martínez", "Cotización"),
// así que una búsqueda por "martinez" debe encontrar "Martínez".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone a NFD, elimina las marcas diacríticas y recompone a NFC.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve s en minúsculas y sin diacríticos.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Entrada no normalizable: degradar a minúsculas simples
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold reporta si s contiene substr ignorando mayúsculas y acentos.
// Con substr vacío siempre devuelve true (filtro inactivo).
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Normalize(s), Normalize(substr))
}
