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


// Package catalog merges the static resource source lists into the read-only
// lookup structures every query runs against.
//
// Index resolves names through exact, alias, and fuzzy tiers and applies the
// source precedence rules when the same resource appears in more than one
// list. Whitelist answers the narrower question of whether an externally
// suggested name plausibly refers to any known resource at all.
//
// Both structures are built once at process start and never mutated during
// request handling, so concurrent queries need no locking.
package catalog
