package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawdex/lawdex/core"
)

func TestIsJurisdictionSpecific(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"french law", true},
		{"chinese law", true},
		{"eu competition law", true},
		{"contract law", false},
		{"legal history", false},
		// long names mentioning a country are topical, not variants
		{"researching french commercial law", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isJurisdictionSpecific(tt.name))
		})
	}
}

func TestScoreLocal(t *testing.T) {
	guides := []core.ResourceEntry{
		{
			Name:        "Contract Law",
			Description: "Researching contract formation, breach, and remedies",
			Aliases:     []string{"Contracts"},
		},
		{
			Name:        "French Contract Law",
			Description: "Contract law sources for France",
		},
		{
			Name:        "Legal History",
			Description: "Historical legal materials and treatises",
		},
	}
	params := DefaultConfig().GuideScoring

	t.Run("topical guide outranks jurisdictional variant", func(t *testing.T) {
		results := scoreLocal("Utah contract law", guides, params, core.TypeLocalGuide, "curated guide", 5)
		require.NotEmpty(t, results)
		assert.Equal(t, "Contract Law", results[0].Name)
		assert.GreaterOrEqual(t, results[0].RelevanceScore, 80)

		for _, r := range results[1:] {
			if r.Name == "French Contract Law" {
				assert.Less(t, r.RelevanceScore, results[0].RelevanceScore)
			}
		}
	})

	t.Run("relevance never exceeds ceiling", func(t *testing.T) {
		results := scoreLocal("contract law formation breach remedies contracts", guides, params, core.TypeLocalGuide, "curated guide", 5)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.LessOrEqual(t, r.RelevanceScore, params.Ceiling)
		}
	})

	t.Run("unrelated entries excluded", func(t *testing.T) {
		results := scoreLocal("maritime salvage", guides, params, core.TypeLocalGuide, "curated guide", 5)
		assert.Empty(t, results)
	})

	t.Run("aliases enable matching", func(t *testing.T) {
		aliased := []core.ResourceEntry{{Name: "Contract Law", Aliases: []string{"Contracts"}}}
		bare := []core.ResourceEntry{{Name: "Contract Law"}}

		results := scoreLocal("contracts", aliased, params, core.TypeLocalGuide, "curated guide", 5)
		require.Len(t, results, 1)

		assert.Empty(t, scoreLocal("contracts", bare, params, core.TypeLocalGuide, "curated guide", 5))
	})

	t.Run("result cap honored", func(t *testing.T) {
		many := make([]core.ResourceEntry, 0, 8)
		for _, name := range []string{
			"Contract Law", "Contract Drafting", "Contract Remedies",
			"Contract Formation", "Contract Disputes", "Contract Theory",
			"Contract Interpretation", "Government Contracts",
		} {
			many = append(many, core.ResourceEntry{Name: name})
		}
		results := scoreLocal("contract", many, params, core.TypeLocalGuide, "curated guide", 5)
		assert.Len(t, results, 5)
	})

	t.Run("results carry type and reason", func(t *testing.T) {
		results := scoreLocal("legal history", guides, params, core.TypeLocalGuide, "curated guide", 5)
		require.NotEmpty(t, results)
		assert.Equal(t, core.TypeLocalGuide, results[0].Type)
		assert.Equal(t, "curated guide", results[0].MatchReason)
	})

	t.Run("empty query yields nil", func(t *testing.T) {
		assert.Nil(t, scoreLocal("   ", guides, params, core.TypeLocalGuide, "curated guide", 5))
	})
}
