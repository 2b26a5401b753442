package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawdex/lawdex/core"
)

func TestMergeResults(t *testing.T) {
	t.Run("duplicate keeps higher relevance", func(t *testing.T) {
		external := []core.RankedResult{
			{Name: "Contract Law", RelevanceScore: 72, MatchReason: "recommended"},
		}
		guides := []core.RankedResult{
			{Name: "contract law", RelevanceScore: 85, MatchReason: "curated guide", Type: core.TypeLocalGuide},
		}

		merged := mergeResults(60, 8, external, guides)
		require.Len(t, merged, 1)
		assert.Equal(t, 85, merged[0].RelevanceScore)
		assert.Equal(t, core.TypeLocalGuide, merged[0].Type)
	})

	t.Run("tie keeps first seen", func(t *testing.T) {
		a := []core.RankedResult{{Name: "HeinOnline", RelevanceScore: 80, MatchReason: "first"}}
		b := []core.RankedResult{{Name: "heinonline", RelevanceScore: 80, MatchReason: "second"}}

		merged := mergeResults(60, 8, a, b)
		require.Len(t, merged, 1)
		assert.Equal(t, "first", merged[0].MatchReason)
	})

	t.Run("floor filters weak results", func(t *testing.T) {
		group := []core.RankedResult{
			{Name: "Strong", RelevanceScore: 90},
			{Name: "Borderline", RelevanceScore: 60},
			{Name: "Weak", RelevanceScore: 59},
		}

		merged := mergeResults(60, 8, group)
		require.Len(t, merged, 2)
		assert.Equal(t, "Strong", merged[0].Name)
		assert.Equal(t, "Borderline", merged[1].Name)
	})

	t.Run("sorted descending and capped", func(t *testing.T) {
		var group []core.RankedResult
		for i := 0; i < 15; i++ {
			group = append(group, core.RankedResult{
				Name:           fmt.Sprintf("Resource %d", i),
				RelevanceScore: 40 + i*4, // 40..96; 10 of 15 clear the floor
			})
		}

		merged := mergeResults(60, 8, group)
		require.Len(t, merged, 8)
		for i, result := range merged {
			assert.GreaterOrEqual(t, result.RelevanceScore, 60)
			if i > 0 {
				assert.GreaterOrEqual(t, merged[i-1].RelevanceScore, result.RelevanceScore)
			}
		}
		assert.Equal(t, 96, merged[0].RelevanceScore)
	})

	t.Run("empty groups yield empty result", func(t *testing.T) {
		assert.Empty(t, mergeResults(60, 8, nil, nil, nil))
	})

	t.Run("unusable names skipped", func(t *testing.T) {
		group := []core.RankedResult{
			{Name: "???", RelevanceScore: 95},
			{Name: "Valid", RelevanceScore: 70},
		}
		merged := mergeResults(60, 8, group)
		require.Len(t, merged, 1)
		assert.Equal(t, "Valid", merged[0].Name)
	})
}
