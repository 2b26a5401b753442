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


package ai

import "errors"

var (
	// ErrRecommenderUnavailable indicates the external recommender could not
	// produce a usable answer (timeout, transport failure, or output that
	// stayed unparseable after retries). Callers recover by falling back to
	// local relevance scoring.
	ErrRecommenderUnavailable = errors.New("recommender unavailable")

	// ErrNoCandidates indicates Recommend was called with an empty candidate
	// list. The shortlister guarantees a non-empty list, so this signals a
	// wiring bug rather than a data condition.
	ErrNoCandidates = errors.New("no candidate names provided")
)
