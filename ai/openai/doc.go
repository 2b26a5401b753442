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


// Package openai implements the ai.Recommender interface against
// OpenAI-compatible chat APIs (OpenAI, Ollama, LocalAI, vLLM).
//
// The recommender embeds the candidate allowlist in the system prompt,
// requests JSON-mode output against a fixed schema, repairs common JSON
// defects in the response, and retries parsing up to 3 times. Transport
// failures and unrecoverable parse failures surface as
// ai.ErrRecommenderUnavailable; callers fall back to local scoring.
package openai
