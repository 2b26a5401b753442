package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries.
// It is derived from the normalized resource name, so the same resource
// supplied by two different sources hashes to the same ID.
type ID uint64

// IDFromName generates a deterministic ID from a resource name using BLAKE2b
// hashing of the normalized form. Identical names (up to normalization)
// produce identical IDs.
func IDFromName(name string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(Normalize(name)))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TypeTag classifies a resource. At most one tag is active per entry.
type TypeTag int

const (
	// TypeUnknown is the zero value; entries with no classification yet.
	TypeUnknown TypeTag = iota
	// TypeExternalDatabase is a licensed or external research database.
	TypeExternalDatabase
	// TypeLocalGuide is a curated local subject guide.
	TypeLocalGuide
	// TypeLibGuideAsset is an individual asset record from a guide platform.
	TypeLibGuideAsset
	// TypeLegalHelp is a public legal-help resource.
	TypeLegalHelp
)

// typePrecedence orders tags for merge conflicts. Curated sources override
// automated ones: LocalGuide > LegalHelp > LibGuideAsset > ExternalDatabase.
var typePrecedence = map[TypeTag]int{
	TypeUnknown:          0,
	TypeExternalDatabase: 1,
	TypeLibGuideAsset:    2,
	TypeLegalHelp:        3,
	TypeLocalGuide:       4,
}

// Precedence returns the merge priority of the tag. Higher wins.
func (t TypeTag) Precedence() int {
	return typePrecedence[t]
}

// String returns a short label for the tag.
func (t TypeTag) String() string {
	switch t {
	case TypeExternalDatabase:
		return "external-database"
	case TypeLocalGuide:
		return "local-guide"
	case TypeLibGuideAsset:
		return "libguide-asset"
	case TypeLegalHelp:
		return "legal-help"
	default:
		return "unknown"
	}
}

// ParseTypeTag maps a tag label back to its TypeTag. Unrecognized labels
// report an error; an empty label is TypeUnknown.
func ParseTypeTag(label string) (TypeTag, error) {
	switch label {
	case "", "unknown":
		return TypeUnknown, nil
	case "external-database":
		return TypeExternalDatabase, nil
	case "local-guide":
		return TypeLocalGuide, nil
	case "libguide-asset":
		return TypeLibGuideAsset, nil
	case "legal-help":
		return TypeLegalHelp, nil
	default:
		return TypeUnknown, fmt.Errorf("%w: label %q", ErrInvalidTypeTag, label)
	}
}

// ResourceEntry is a single recommendable item from one of the catalog
// sources. Aliases have set semantics; order is irrelevant.
type ResourceEntry struct {
	Id          ID
	Name        string
	Aliases     []string
	URL         string
	Description string
	Type        TypeTag
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// ScoredCandidate is a transient per-query value produced by lexical scoring.
type ScoredCandidate struct {
	Name  string
	Score int
}

// RankedResult is a final recommendation. RelevanceScore is an integer in
// [1,100]; Type carries at most one active tag.
type RankedResult struct {
	Name           string
	RelevanceScore int
	MatchReason    string
	Type           TypeTag
	URL            string
	Description    string
}
