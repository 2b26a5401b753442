package storage

import (
	"testing"
	"time"

	"github.com/lawdex/lawdex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	entry := &core.ResourceEntry{
		Id:          core.IDFromName("Westlaw Edge"),
		Name:        "Westlaw Edge",
		Aliases:     []string{"Westlaw", "WL"},
		URL:         "https://westlaw.com",
		Description: "Full-text legal research database.",
		Type:        core.TypeExternalDatabase,
		InsertedAt:  now,
		UpdatedAt:   now,
	}

	data := MarshalResource(entry)
	decoded, err := UnmarshalResource(data)
	require.NoError(t, err)
	assert.Equal(t, entry, decoded)
}

func TestResourceRoundTrip_ZeroValues(t *testing.T) {
	entry := &core.ResourceEntry{
		Name:       "Nolo",
		InsertedAt: time.UnixMicro(0).UTC(),
		UpdatedAt:  time.UnixMicro(0).UTC(),
	}

	data := MarshalResource(entry)
	decoded, err := UnmarshalResource(data)
	require.NoError(t, err)
	assert.Equal(t, entry, decoded)
	assert.Nil(t, decoded.Aliases)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromName("HeinOnline")
	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestUnmarshalResource_Truncated(t *testing.T) {
	entry := &core.ResourceEntry{Name: "Westlaw Edge", Type: core.TypeExternalDatabase}
	data := MarshalResource(entry)

	_, err := UnmarshalResource(data[:2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
