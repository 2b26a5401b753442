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


package mock

import (
	"context"

	"github.com/lawdex/lawdex/ai"
)

// MockRecommender is a test double for ai.Recommender.
// It allows custom behavior injection via function fields.
type MockRecommender struct {
	// RecommendFunc is called by Recommend if set.
	// If nil, uses the default candidate echo behavior.
	RecommendFunc func(ctx context.Context, query string, candidates []string) ([]ai.Suggestion, error)

	callCount int
}

var _ ai.Recommender = (*MockRecommender)(nil)

// NewMockRecommender creates a mock recommender with default behavior.
// Note: returns the concrete type to allow test assertions.
func NewMockRecommender() *MockRecommender {
	return &MockRecommender{}
}

// WithRecommendFunc sets custom behavior and returns the mock for chaining.
func (m *MockRecommender) WithRecommendFunc(fn func(ctx context.Context, query string, candidates []string) ([]ai.Suggestion, error)) *MockRecommender {
	m.RecommendFunc = fn
	return m
}

// Recommend returns deterministic mock suggestions.
// Default behavior: echoes the first few candidates with descending scores.
func (m *MockRecommender) Recommend(ctx context.Context, query string, candidates []string) ([]ai.Suggestion, error) {
	m.callCount++

	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, query, candidates)
	}

	if len(candidates) == 0 {
		return nil, ai.ErrNoCandidates
	}

	limit := 3
	if len(candidates) < limit {
		limit = len(candidates)
	}

	suggestions := make([]ai.Suggestion, 0, limit)
	score := 90
	for _, name := range candidates[:limit] {
		suggestions = append(suggestions, ai.Suggestion{
			Name:           name,
			RelevanceScore: score,
			MatchReason:    "mock recommendation",
		})
		score -= 10
	}

	return suggestions, nil
}

// CallCount returns the number of times Recommend was called.
func (m *MockRecommender) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRecommender) Reset() {
	m.callCount = 0
	m.RecommendFunc = nil
}
