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

import "errors"

// Domain validation errors
var (
	// ErrInvalidResource indicates a ResourceEntry failed validation.
	ErrInvalidResource = errors.New("invalid resource entry")

	// ErrEmptyResourceName indicates the Name field is empty.
	ErrEmptyResourceName = errors.New("resource name cannot be empty")

	// ErrInvalidTypeTag indicates an unrecognized TypeTag value.
	ErrInvalidTypeTag = errors.New("invalid type tag")

	// ErrInvalidRelevance indicates a relevance score outside [1,100].
	ErrInvalidRelevance = errors.New("relevance score must be between 1 and 100")
)
