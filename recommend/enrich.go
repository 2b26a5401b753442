package recommend

import (
	"strings"
	"unicode/utf8"

	"github.com/lawdex/lawdex/catalog"
	"github.com/lawdex/lawdex/core"
)

// descriptionLimit bounds enriched description length; longer descriptions
// are truncated with an ellipsis marker.
const descriptionLimit = 400

// enrichResults attaches canonical URL, description, and type flags to final
// results via catalog lookup.
//
// Type resolution preserves any flag already present on the incoming result
// (set by its originating scorer); the catalog fills it only when unset, and
// an entry that exists in the catalog but carries no classification defaults
// to ExternalDatabase. Curated classifications set upstream are therefore
// never overwritten by catalog-derived defaults.
func enrichResults(index *catalog.Index, results []core.RankedResult) []core.RankedResult {
	enriched := make([]core.RankedResult, len(results))
	for i, result := range results {
		entry, found := index.Lookup(result.Name)
		if found {
			if entry.URL != "" {
				result.URL = ensureScheme(entry.URL)
			}
			if entry.Description != "" {
				result.Description = truncateDescription(entry.Description)
			}
			if result.Type == core.TypeUnknown {
				if entry.Type != core.TypeUnknown {
					result.Type = entry.Type
				} else {
					result.Type = core.TypeExternalDatabase
				}
			}
		}
		if result.Description == "" {
			result.Description = truncateDescription(result.MatchReason)
		}
		enriched[i] = result
	}
	return enriched
}

// ensureScheme prefixes catalog URLs that were stored without an explicit
// scheme.
func ensureScheme(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return "https://" + url
}

func truncateDescription(description string) string {
	if len(description) <= descriptionLimit {
		return description
	}
	// Back off to a rune boundary before cutting
	cut := descriptionLimit
	for cut > 0 && !utf8.RuneStart(description[cut]) {
		cut--
	}
	return description[:cut] + "…"
}
