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


package core

import "fmt"

// ValidateResourceEntry validates a ResourceEntry according to domain rules.
//
// Validation rules:
//   - Name must not be empty, and must survive normalization (a name made
//     entirely of punctuation normalizes to "" and cannot be indexed)
//   - Type must be a recognized TypeTag
//
// NOT validated:
//   - URL and Description (optional enrichment fields)
//   - ID (0 is valid; content IDs are assigned at storage time)
func ValidateResourceEntry(entry *ResourceEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidResource)
	}

	if entry.Name == "" || Normalize(entry.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResource, ErrEmptyResourceName)
	}

	if err := ValidateTypeTag(entry.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}

	return nil
}

// ValidateTypeTag validates that a TypeTag has a recognized value.
// TypeUnknown is accepted; unclassified entries default downstream.
func ValidateTypeTag(tag TypeTag) error {
	switch tag {
	case TypeUnknown, TypeExternalDatabase, TypeLocalGuide, TypeLibGuideAsset, TypeLegalHelp:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidTypeTag, tag)
	}
}

// ClampRelevance forces a relevance score into the [1,100] range expected of
// final ranked results.
func ClampRelevance(score int) int {
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}
