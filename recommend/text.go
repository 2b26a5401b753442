package recommend

import (
	"strings"

	"github.com/lawdex/lawdex/core"
)

// minTokenLength is the shortest query token the local scorers count.
// Shorter tokens ("of", "in") match everything and carry no signal.
const minTokenLength = 3

// tokenSet normalizes each input string and collects its tokens into a set.
func tokenSet(texts ...string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, text := range texts {
		for _, token := range core.NormalizeTokens(text) {
			set[token] = struct{}{}
		}
	}
	return set
}

// containsEither reports whether either normalized string contains the other.
// Both must be non-empty.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
