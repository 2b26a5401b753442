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


// Package storage defines the persistence layer for catalog entries.
//
// Catalog source lists are seeded into storage once and read back at process
// start to build the in-memory lookup structures; nothing writes to storage
// during query handling. The package defines the ResourceRepository interface
// and the MUS binary serialization for stored records; the badger subpackage
// provides the BadgerDB implementation.
package storage
