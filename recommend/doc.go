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


// Package recommend implements the resource matching and ranking engine.
//
// The Engine type runs a multi-stage pipeline for each research query:
//   - Lexical shortlisting of external database candidates
//   - External AI recommendation over the shortlist, validated against a
//     whitelist so hallucinated resource names never reach results
//   - Direct local scoring of curated subject guides and guide assets
//   - Merging, relevance-floor filtering, and catalog enrichment
//
// The external recommender is advisory: local scoring proceeds even when
// it fails or times out. Results are ranked by relevance and capped to a
// small, confident set.
package recommend
