package catalog

import (
	"testing"

	"github.com/lawdex/lawdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_TypePrecedence(t *testing.T) {
	external := []core.ResourceEntry{
		{Name: "Family Law", Type: core.TypeExternalDatabase, URL: "https://example.com/family"},
	}
	guides := []core.ResourceEntry{
		{Name: "Family Law", Type: core.TypeLocalGuide},
	}

	t.Run("curated source overrides automated", func(t *testing.T) {
		idx := BuildIndex([][]core.ResourceEntry{external, guides})
		entry, ok := idx.Lookup("Family Law")
		require.True(t, ok)
		assert.Equal(t, core.TypeLocalGuide, entry.Type)
	})

	t.Run("order of sources does not matter", func(t *testing.T) {
		idx := BuildIndex([][]core.ResourceEntry{guides, external})
		entry, ok := idx.Lookup("Family Law")
		require.True(t, ok)
		assert.Equal(t, core.TypeLocalGuide, entry.Type)
	})

	t.Run("first non-empty url survives type override", func(t *testing.T) {
		idx := BuildIndex([][]core.ResourceEntry{external, guides})
		entry, ok := idx.Lookup("Family Law")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/family", entry.URL)
	})
}

func TestBuildIndex_FieldMerging(t *testing.T) {
	sources := [][]core.ResourceEntry{
		{{Name: "HeinOnline", Type: core.TypeExternalDatabase, Description: "Law journal archive"}},
		{{Name: "HeinOnline®", Type: core.TypeExternalDatabase, URL: "heinonline.org", Description: "ignored, first wins"}},
	}

	idx := BuildIndex(sources)
	assert.Equal(t, 1, idx.Len())

	entry, ok := idx.Lookup("heinonline")
	require.True(t, ok)
	assert.Equal(t, "Law journal archive", entry.Description)
	assert.Equal(t, "heinonline.org", entry.URL)
}

func TestBuildIndex_AliasUnion(t *testing.T) {
	sources := [][]core.ResourceEntry{
		{{Name: "LexisNexis", Type: core.TypeExternalDatabase, Aliases: []string{"Lexis"}}},
		{{Name: "LexisNexis", Type: core.TypeExternalDatabase, Aliases: []string{"Lexis", "Nexis Uni"}}},
	}

	idx := BuildIndex(sources)
	entry, ok := idx.Lookup("Nexis Uni")
	require.True(t, ok)
	assert.Equal(t, "LexisNexis", entry.Name)
	assert.Len(t, entry.Aliases, 2)
}

func TestBuildIndex_EmptySourceDegrades(t *testing.T) {
	idx := BuildIndex([][]core.ResourceEntry{
		nil,
		{{Name: "Westlaw Edge", Type: core.TypeExternalDatabase}},
	})

	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Lookup("Westlaw Edge")
	assert.True(t, ok)
}

func TestIndex_Lookup(t *testing.T) {
	idx := BuildIndex([][]core.ResourceEntry{
		{
			{Name: "Westlaw Edge", Type: core.TypeExternalDatabase, Aliases: []string{"Westlaw"}},
			{Name: "Congressional Record", Type: core.TypeExternalDatabase},
			{Name: "Nolo", Type: core.TypeLegalHelp},
		},
	})

	t.Run("exact match", func(t *testing.T) {
		entry, ok := idx.Lookup("westlaw edge")
		require.True(t, ok)
		assert.Equal(t, "Westlaw Edge", entry.Name)
	})

	t.Run("exact match ignores punctuation and case", func(t *testing.T) {
		entry, ok := idx.Lookup("Westlaw Edge™")
		require.True(t, ok)
		assert.Equal(t, "Westlaw Edge", entry.Name)
	})

	t.Run("alias match", func(t *testing.T) {
		entry, ok := idx.Lookup("Westlaw")
		require.True(t, ok)
		assert.Equal(t, "Westlaw Edge", entry.Name)
	})

	t.Run("fuzzy substring containment", func(t *testing.T) {
		entry, ok := idx.Lookup("The Congressional Record Daily Edition")
		require.True(t, ok)
		assert.Equal(t, "Congressional Record", entry.Name)
	})

	t.Run("fuzzy shared long token", func(t *testing.T) {
		entry, ok := idx.Lookup("congressional hearings")
		require.True(t, ok)
		assert.Equal(t, "Congressional Record", entry.Name)
	})

	t.Run("short strings do not fuzzy match", func(t *testing.T) {
		// "nol" vs "nolo": below the 4-char containment minimum
		_, ok := idx.Lookup("nol")
		assert.False(t, ok)
	})

	t.Run("unrelated name not found", func(t *testing.T) {
		_, ok := idx.Lookup("quantum chromodynamics")
		assert.False(t, ok)
	})

	t.Run("empty name not found", func(t *testing.T) {
		_, ok := idx.Lookup("")
		assert.False(t, ok)
	})
}
