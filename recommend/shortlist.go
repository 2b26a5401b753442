package recommend

import (
	"sort"

	"github.com/lawdex/lawdex/core"
)

// Shortlist selects up to max entry names to hand to the external
// recommender. Every entry is scored lexically against the query; when
// nothing scores above zero the first max names in ascending alphabetical
// order are returned instead, so the recommender always receives a
// non-empty, bounded candidate list for a non-empty catalog.
func Shortlist(query string, entries []core.ResourceEntry, max, substringBonus int) []string {
	if max <= 0 || len(entries) == 0 {
		return nil
	}

	// Dedupe by normalized name keeping the highest score per name.
	seen := make(map[string]int) // normalized name -> index into candidates
	candidates := make([]core.ScoredCandidate, 0, len(entries))
	anyScored := false

	for _, entry := range entries {
		key := core.Normalize(entry.Name)
		if key == "" {
			continue
		}
		score := LexicalScore(query, entry.Name, entry.Aliases, substringBonus)
		if score > 0 {
			anyScored = true
		}
		if i, ok := seen[key]; ok {
			if score > candidates[i].Score {
				candidates[i].Score = score
			}
			continue
		}
		seen[key] = len(candidates)
		candidates = append(candidates, core.ScoredCandidate{Name: entry.Name, Score: score})
	}

	if !anyScored {
		// Alphabetical fallback: prevents an empty-prompt failure mode for
		// queries with no lexical overlap at all.
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Name < candidates[j].Name
		})
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
	}

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return names
}
