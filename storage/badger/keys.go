package badger

import (
	"fmt"

	"github.com/lawdex/lawdex/core"
)

// Key prefixes for different data types
const (
	resourcePrefix     = "resrec"
	resourceNamePrefix = "resrecn"
)

// makeResourceKey generates a key for a resource entry by ID.
func makeResourceKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", resourcePrefix, id))
}

// makeResourceNameKey generates a key for the normalized-name index.
// Format: prefix:normalizedName
func makeResourceNameKey(name string) []byte {
	return []byte(resourceNamePrefix + ":" + core.Normalize(name))
}
