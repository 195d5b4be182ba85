package entitlement

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The two canonical slug forms diverge only after a shared diacritic strip:
// config keys are lowercase hyphen-separated, module names are uppercase
// underscore-separated. Keeping them as two named functions avoids the bug
// class of swapping one for the other.

var (
	stripMarks      = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlnumLower   = regexp.MustCompile(`[^a-z0-9]+`)
	nonAlnumAnyCase = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// stripDiacritics removes combining marks after canonical decomposition,
// so "Autenticación" becomes "Autenticacion".
func stripDiacritics(value string) string {
	out, _, err := transform.String(stripMarks, value)
	if err != nil {
		return value
	}
	return out
}

// ConfigKey normalizes a slug to the static-configuration key alphabet:
// diacritics stripped, lowercased, runs of non-alphanumerics collapsed to a
// single hyphen, leading and trailing hyphens trimmed. Idempotent.
func ConfigKey(slug string) string {
	s := stripDiacritics(slug)
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumLower.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ModuleName normalizes a slug to the module-registry naming convention:
// diacritics stripped, runs of non-alphanumerics collapsed to a single
// underscore, trimmed, then uppercased. Idempotent.
func ModuleName(slug string) string {
	s := stripDiacritics(slug)
	s = strings.TrimSpace(s)
	s = nonAlnumAnyCase.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return strings.ToUpper(s)
}
