// Copyright 2026 Lawdex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/lawdex/lawdex/core"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Timestamps are stored as Unix microseconds.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// MarshalResource serializes a ResourceEntry to bytes.
func MarshalResource(entry *core.ResourceEntry) []byte {
	buf := make([]byte, sizeResource(entry))
	n := varint.Uint64.Marshal(uint64(entry.Id), buf)
	n += varint.Int.Marshal(int(entry.Type), buf[n:])
	n += ord.String.Marshal(entry.Name, buf[n:])
	n += varint.PositiveInt.Marshal(len(entry.Aliases), buf[n:])
	for _, alias := range entry.Aliases {
		n += ord.String.Marshal(alias, buf[n:])
	}
	n += ord.String.Marshal(entry.URL, buf[n:])
	n += ord.String.Marshal(entry.Description, buf[n:])
	n += varint.Int64.Marshal(entry.InsertedAt.UnixMicro(), buf[n:])
	varint.Int64.Marshal(entry.UpdatedAt.UnixMicro(), buf[n:])
	return buf
}

func sizeResource(entry *core.ResourceEntry) int {
	size := varint.Uint64.Size(uint64(entry.Id))
	size += varint.Int.Size(int(entry.Type))
	size += ord.String.Size(entry.Name)
	size += varint.PositiveInt.Size(len(entry.Aliases))
	for _, alias := range entry.Aliases {
		size += ord.String.Size(alias)
	}
	size += ord.String.Size(entry.URL)
	size += ord.String.Size(entry.Description)
	size += varint.Int64.Size(entry.InsertedAt.UnixMicro())
	size += varint.Int64.Size(entry.UpdatedAt.UnixMicro())
	return size
}

// UnmarshalResource deserializes a ResourceEntry from bytes.
func UnmarshalResource(data []byte) (*core.ResourceEntry, error) {
	entry, err := unmarshalResource(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return entry, nil
}

func unmarshalResource(data []byte) (*core.ResourceEntry, error) {
	var entry core.ResourceEntry

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	entry.Id = core.ID(id)

	tag, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	entry.Type = core.TypeTag(tag)

	entry.Name, m, err = ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m

	aliasCount, m, err := varint.PositiveInt.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	if aliasCount > 0 {
		entry.Aliases = make([]string, aliasCount)
		for i := 0; i < aliasCount; i++ {
			entry.Aliases[i], m, err = ord.String.Unmarshal(data[n:])
			if err != nil {
				return nil, err
			}
			n += m
		}
	}

	entry.URL, m, err = ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m

	entry.Description, m, err = ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m

	insertedAt, m, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	n += m
	entry.InsertedAt = time.UnixMicro(insertedAt).UTC()

	updatedAt, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	entry.UpdatedAt = time.UnixMicro(updatedAt).UTC()

	return &entry, nil
}
