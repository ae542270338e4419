// Package textutil normaliza texto para búsquedas insensibles a mayúsculas y
// acentos: "limon" debe encontrar "Limón".
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas y sin acentos.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: degradar a minúsculas simples
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// ContainsFold indica si s contiene substr ignorando mayúsculas y acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
