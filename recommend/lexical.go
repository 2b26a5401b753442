package recommend

import (
	"strings"

	"github.com/lawdex/lawdex/core"
)

// LexicalScore computes the token-overlap score between a query and a
// candidate name plus its aliases: 1 point per query token present in the
// combined haystack, plus a mild bonus when the haystack contains the full
// normalized query as a substring. A zero score means no lexical
// relationship; candidates scoring zero are excluded wherever this score
// gates inclusion.
func LexicalScore(query, name string, aliases []string, substringBonus int) int {
	queryNorm := core.Normalize(query)
	if queryNorm == "" {
		return 0
	}

	parts := make([]string, 0, len(aliases)+1)
	parts = append(parts, core.Normalize(name))
	for _, alias := range aliases {
		parts = append(parts, core.Normalize(alias))
	}
	haystack := strings.Join(parts, " ")

	haystackTokens := make(map[string]struct{})
	for _, token := range strings.Fields(haystack) {
		haystackTokens[token] = struct{}{}
	}

	score := 0
	for _, token := range strings.Fields(queryNorm) {
		if _, ok := haystackTokens[token]; ok {
			score++
		}
	}

	if strings.Contains(haystack, queryNorm) {
		score += substringBonus
	}

	return score
}
