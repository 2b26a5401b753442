package catalog

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lawdex/lawdex/core"
)

// fuzzyMinLength is the minimum normalized length for substring containment
// and shared-token matching in the fuzzy lookup tier. Shorter strings match
// too much to be trusted.
const fuzzyMinLength = 4

// Index merges the catalog sources into one read-only lookup structure.
// Build it once at startup; it requires no locking afterwards.
type Index struct {
	entries map[string]core.ResourceEntry // normalized name -> merged entry
	aliases map[string]string             // normalized alias -> normalized name
	keys    []string                      // sorted normalized names, for deterministic fuzzy scans
	logger  *slog.Logger
}

// IndexOption configures an Index during construction.
type IndexOption func(*Index)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) IndexOption {
	return func(idx *Index) {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
	}
}

// BuildIndex merges the given source lists into an Index.
//
// Entries sharing a normalized name are merged: the type tag with the highest
// precedence wins (LocalGuide > LegalHelp > LibGuideAsset > ExternalDatabase),
// the first non-empty URL and description are kept regardless of type
// precedence, and aliases accumulate as a set union. An empty source list is
// not an error; it is logged and the index degrades to the remaining sources.
func BuildIndex(sources [][]core.ResourceEntry, opts ...IndexOption) *Index {
	idx := &Index{
		entries: make(map[string]core.ResourceEntry),
		aliases: make(map[string]string),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(idx)
	}

	for i, source := range sources {
		if len(source) == 0 {
			idx.logger.Warn("catalog source is empty", "source", i)
			continue
		}
		for _, entry := range source {
			idx.add(entry)
		}
	}

	idx.keys = make([]string, 0, len(idx.entries))
	for key := range idx.entries {
		idx.keys = append(idx.keys, key)
	}
	sort.Strings(idx.keys)

	return idx
}

func (idx *Index) add(entry core.ResourceEntry) {
	key := core.Normalize(entry.Name)
	if key == "" {
		idx.logger.Warn("skipping entry with unusable name", "name", entry.Name)
		return
	}

	merged, exists := idx.entries[key]
	if !exists {
		merged = core.ResourceEntry{
			Id:   core.IDFromName(entry.Name),
			Name: entry.Name,
			Type: entry.Type,
		}
	} else if entry.Type.Precedence() > merged.Type.Precedence() {
		merged.Type = entry.Type
	}

	// First non-empty wins per field, independent of type precedence.
	if merged.URL == "" {
		merged.URL = entry.URL
	}
	if merged.Description == "" {
		merged.Description = entry.Description
	}

	for _, alias := range entry.Aliases {
		aliasKey := core.Normalize(alias)
		if aliasKey == "" || aliasKey == key {
			continue
		}
		if _, taken := idx.aliases[aliasKey]; !taken {
			idx.aliases[aliasKey] = key
			merged.Aliases = append(merged.Aliases, alias)
		}
	}

	idx.entries[key] = merged
}

// Len returns the number of merged entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Lookup resolves a resource name to its merged catalog entry using
// three-tier resolution:
//
//  1. exact normalized-name match
//  2. normalized-alias match
//  3. fuzzy fallback over all entries: substring containment either direction
//     (both strings >= 4 chars) or a shared token of length >= 4
//
// The first successful tier wins. The fuzzy tier returns the first structural
// match in sorted key order; it does not rank among fuzzy candidates.
func (idx *Index) Lookup(name string) (core.ResourceEntry, bool) {
	key := core.Normalize(name)
	if key == "" {
		return core.ResourceEntry{}, false
	}

	if entry, ok := idx.entries[key]; ok {
		return entry, true
	}

	if canonical, ok := idx.aliases[key]; ok {
		return idx.entries[canonical], true
	}

	for _, candidate := range idx.keys {
		if fuzzyMatch(key, candidate) {
			return idx.entries[candidate], true
		}
	}

	return core.ResourceEntry{}, false
}

// fuzzyMatch reports whether two normalized names are structurally related:
// one contains the other (both >= fuzzyMinLength) or they share a token of
// at least fuzzyMinLength characters.
func fuzzyMatch(a, b string) bool {
	if len(a) >= fuzzyMinLength && len(b) >= fuzzyMinLength {
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	return sharedLongToken(a, b)
}

func sharedLongToken(a, b string) bool {
	bTokens := make(map[string]struct{})
	for _, token := range strings.Fields(b) {
		if len(token) >= fuzzyMinLength {
			bTokens[token] = struct{}{}
		}
	}
	if len(bTokens) == 0 {
		return false
	}
	for _, token := range strings.Fields(a) {
		if len(token) < fuzzyMinLength {
			continue
		}
		if _, ok := bTokens[token]; ok {
			return true
		}
	}
	return false
}
