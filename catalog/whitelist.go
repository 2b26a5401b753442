package catalog

import (
	"strings"

	"github.com/lawdex/lawdex/core"
)

// Whitelist is the set of names the external recommender is allowed to
// return: every catalog entry name plus every alias, normalized. Like the
// Index it is built once at startup and read-only afterwards.
type Whitelist struct {
	names map[string]struct{}
}

// NewWhitelist collects the normalized names and aliases of all source lists.
func NewWhitelist(sources ...[]core.ResourceEntry) *Whitelist {
	w := &Whitelist{names: make(map[string]struct{})}
	for _, source := range sources {
		for _, entry := range source {
			w.addName(entry.Name)
			for _, alias := range entry.Aliases {
				w.addName(alias)
			}
		}
	}
	return w
}

func (w *Whitelist) addName(name string) {
	key := core.Normalize(name)
	if key != "" {
		w.names[key] = struct{}{}
	}
}

// Len returns the number of distinct normalized names in the whitelist.
func (w *Whitelist) Len() int {
	return len(w.names)
}

// IsPlausible reports whether a suggested name plausibly corresponds to a
// known catalog entry: an exact normalized match, or the shorter of the two
// normalized strings (minimum length 4) contained in the longer.
//
// The check is intentionally permissive. The recommender already chooses
// from an allowlist, so a mismatch is more likely formatting drift than
// hallucination — but a name with no structural relationship to any known
// entry must still be rejected, because this is the last line of defense
// before a hallucinated name reaches the user.
func (w *Whitelist) IsPlausible(suggestedName string) bool {
	key := core.Normalize(suggestedName)
	if key == "" {
		return false
	}

	if _, ok := w.names[key]; ok {
		return true
	}

	for known := range w.names {
		shorter, longer := key, known
		if len(shorter) > len(longer) {
			shorter, longer = longer, shorter
		}
		if len(shorter) >= fuzzyMinLength && strings.Contains(longer, shorter) {
			return true
		}
	}

	return false
}
