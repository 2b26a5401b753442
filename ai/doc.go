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


// Package ai provides abstractions for the AI recommender used in Lawdex.
//
// The package defines the Recommender interface, an untrusted external
// collaborator that maps a free-text query plus a bounded candidate name
// list to ranked suggestions. The core matching engine depends only on this
// abstraction; nothing downstream believes the recommender's output until
// it has been validated against the catalog whitelist.
//
// # Implementation Packages
//
//   - ai/openai: production implementation against OpenAI-compatible chat APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Failure Model
//
// A Recommender may fail in every way a network service can: timeouts,
// transport errors, malformed JSON. Callers treat all of these as "no AI
// suggestions" and continue with local scoring only; no recommender failure
// is ever fatal to a query.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"), ai.WithModel("qwen2.5:3b"))
//	rec, err := openai.NewRecommender(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	suggestions, err := rec.Recommend(ctx, "utah contract law", candidates)
package ai
