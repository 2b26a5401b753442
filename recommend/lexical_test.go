package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawdex/lawdex/core"
)

func TestLexicalScore(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		resource string
		aliases  []string
		expected int
	}{
		{
			name:     "no overlap",
			query:    "maritime salvage law",
			resource: "HeinOnline",
			expected: 0,
		},
		{
			name:     "single token overlap",
			query:    "westlaw training",
			resource: "Westlaw Edge",
			expected: 1,
		},
		{
			name:     "full substring match adds bonus",
			query:    "westlaw edge",
			resource: "Westlaw Edge",
			expected: 4, // 2 tokens + substring bonus 2
		},
		{
			name:     "alias contributes tokens",
			query:    "lexis research",
			resource: "LexisNexis",
			aliases:  []string{"Lexis", "Lexis Advance"},
			expected: 1,
		},
		{
			name:     "empty query scores zero",
			query:    "   ",
			resource: "Westlaw Edge",
			expected: 0,
		},
		{
			name:     "case ignored",
			query:    "WESTLAW Edge!",
			resource: "westlaw edge",
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := LexicalScore(tt.query, tt.resource, tt.aliases, 2)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestShortlist(t *testing.T) {
	entries := []core.ResourceEntry{
		{Name: "Westlaw Edge", Aliases: []string{"Westlaw"}},
		{Name: "LexisNexis", Aliases: []string{"Lexis"}},
		{Name: "HeinOnline"},
		{Name: "Bloomberg Law"},
	}

	t.Run("ranked by lexical score", func(t *testing.T) {
		names := Shortlist("westlaw edge training", entries, 10, 2)
		assert.NotEmpty(t, names)
		assert.Equal(t, "Westlaw Edge", names[0])
	})

	t.Run("alphabetical fallback when nothing scores", func(t *testing.T) {
		names := Shortlist("maritime salvage disputes", entries, 10, 2)
		assert.Equal(t, []string{"Bloomberg Law", "HeinOnline", "LexisNexis", "Westlaw Edge"}, names)
	})

	t.Run("never empty for non-empty catalog", func(t *testing.T) {
		names := Shortlist("zzzzqqqq", entries, 10, 2)
		assert.Len(t, names, 4)
	})

	t.Run("respects cap", func(t *testing.T) {
		names := Shortlist("law", entries, 2, 2)
		assert.Len(t, names, 2)
	})

	t.Run("duplicate names collapse", func(t *testing.T) {
		dup := append(entries, core.ResourceEntry{Name: "westlaw edge"})
		names := Shortlist("anything at all", dup, 10, 2)
		assert.Len(t, names, 4)
	})

	t.Run("empty catalog yields nil", func(t *testing.T) {
		assert.Nil(t, Shortlist("contracts", nil, 10, 2))
	})
}
