package recommend

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lawdex/lawdex/core"
)

// jurisdictionMaxWords bounds how long a name can be and still count as a
// jurisdiction-specific variant. Longer names are treated as topical guides
// even when they mention a country ("Researching French Commercial Law" is
// topical; "French Law" is not).
const jurisdictionMaxWords = 3

// jurisdictionPattern matches country/region qualifiers in normalized names.
var jurisdictionPattern = regexp.MustCompile(`\b(us|usa|american|international|foreign|comparative|transnational|england|english|uk|british|scottish|irish|canada|canadian|australia|australian|china|chinese|japan|japanese|germany|german|france|french|italy|italian|spain|spanish|india|indian|mexico|mexican|brazil|brazilian|russia|russian|african|asian|european|eu)\b`)

// isJurisdictionSpecific reports whether a normalized name looks like a
// narrow country/region variant of a subject: it carries a jurisdiction
// qualifier and is short enough to be the variant itself rather than a
// broader topical guide.
func isJurisdictionSpecific(normName string) bool {
	if len(strings.Fields(normName)) > jurisdictionMaxWords {
		return false
	}
	return jurisdictionPattern.MatchString(normName)
}

// scoreLocal ranks a local catalog directly against the query, independent
// of the external recommender. Scoring policy per entry:
//
//   - SubstringBonus when normalized query and name contain each other in
//     either direction; within that branch, TopicBoost when the name is a
//     general topical entry (not jurisdiction-specific) — general guides
//     deliberately outrank narrow jurisdictional variants of the same topic
//   - TokenWeight per query token (length >= minTokenLength) present in the
//     combined name, description, and alias token set
//   - AliasBonus once when any alias substring-matches the query
//
// Raw 0 excludes the entry. Relevance = min(Ceiling, BaseRelevance +
// raw*RelevanceStep). Results are sorted descending and capped to resultCap.
func scoreLocal(query string, entries []core.ResourceEntry, params LocalScoring, tag core.TypeTag, reason string, resultCap int) []core.RankedResult {
	queryNorm := core.Normalize(query)
	if queryNorm == "" || len(entries) == 0 {
		return nil
	}
	queryTokens := strings.Fields(queryNorm)

	var results []core.RankedResult
	for _, entry := range entries {
		nameNorm := core.Normalize(entry.Name)
		if nameNorm == "" {
			continue
		}

		raw := 0
		if containsEither(queryNorm, nameNorm) {
			raw += params.SubstringBonus
			if !isJurisdictionSpecific(nameNorm) {
				raw += params.TopicBoost
			}
		}

		haystack := make([]string, 0, len(entry.Aliases)+2)
		haystack = append(haystack, entry.Name, entry.Description)
		haystack = append(haystack, entry.Aliases...)
		haystackTokens := tokenSet(haystack...)
		for _, token := range queryTokens {
			if len(token) < minTokenLength {
				continue
			}
			if _, ok := haystackTokens[token]; ok {
				raw += params.TokenWeight
			}
		}

		for _, alias := range entry.Aliases {
			if containsEither(queryNorm, core.Normalize(alias)) {
				raw += params.AliasBonus
				break
			}
		}

		if raw <= 0 {
			continue
		}

		relevance := params.BaseRelevance + raw*params.RelevanceStep
		if relevance > params.Ceiling {
			relevance = params.Ceiling
		}

		results = append(results, core.RankedResult{
			Name:           entry.Name,
			RelevanceScore: relevance,
			MatchReason:    reason,
			Type:           tag,
			URL:            entry.URL,
			Description:    entry.Description,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	if len(results) > resultCap {
		results = results[:resultCap]
	}
	return results
}
