package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiReplacer maps curly quotes and typographic dashes to ASCII equivalents.
var asciiReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
)

// stripAccents decomposes and removes combining marks (DUPONT, Élodie -> elodie).
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a resource name or query string into a comparison
// key. It is total (empty input yields empty output) and idempotent.
//
// Transformation order matters: curly punctuation is mapped to ASCII, the
// string is lowercased, "&" becomes "and", accents are folded, then every
// remaining non-letter, non-digit, non-space rune is dropped and whitespace
// runs collapse to a single space.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = asciiReplacer.Replace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")

	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeTokens returns the whitespace-separated tokens of the normalized
// form of s.
func NormalizeTokens(s string) []string {
	return strings.Fields(Normalize(s))
}
