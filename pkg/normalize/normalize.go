// Package normalize ofrece normalización de texto para búsquedas: minúsculas
// y sin marcas diacríticas, de modo que "Café" empareje con "cafe".
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Search normaliza un término de búsqueda: trim, minúsculas y sin acentos.
func Search(s string) string {
	out, _, err := transform.String(stripper, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
