package recommend

import (
	"sort"

	"github.com/lawdex/lawdex/core"
)

// mergeResults combines result groups into one ranked list. Deduplication
// key is the normalized name; when the same name appears in more than one
// group the entry with the higher relevance wins (ties keep first-seen).
// After dedup the list is sorted descending, entries below floor are
// discarded, and the list is truncated to max. The floor and cap implement
// the precision-over-recall product goal: few confident matches.
func mergeResults(floor, max int, groups ...[]core.RankedResult) []core.RankedResult {
	seen := make(map[string]int) // normalized name -> index into merged
	var merged []core.RankedResult

	for _, group := range groups {
		for _, result := range group {
			key := core.Normalize(result.Name)
			if key == "" {
				continue
			}
			if i, ok := seen[key]; ok {
				if result.RelevanceScore > merged[i].RelevanceScore {
					merged[i] = result
				}
				continue
			}
			seen[key] = len(merged)
			merged = append(merged, result)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RelevanceScore > merged[j].RelevanceScore
	})

	kept := merged[:0]
	for _, result := range merged {
		if result.RelevanceScore >= floor {
			kept = append(kept, result)
		}
	}

	if len(kept) > max {
		kept = kept[:max]
	}
	return kept
}
