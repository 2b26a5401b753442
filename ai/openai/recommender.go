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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/lawdex/lawdex/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Recommender implements ai.Recommender using OpenAI-compatible chat APIs.
type Recommender struct {
	client       llms.Model
	config       *ai.Config
	minRelevance int
	logger       *slog.Logger
}

// recommendation is an internal type used for JSON unmarshaling.
// It matches the structure expected of the LLM.
type recommendation struct {
	Name           string `json:"name"`
	RelevanceScore int    `json:"relevance_score"`
	MatchReason    string `json:"match_reason"`
}

// answer is the wrapper structure for the LLM's JSON response.
type answer struct {
	Recommendations []recommendation `json:"recommendations"`
}

// newRecommender is an internal constructor that returns the concrete type.
func newRecommender(config *ai.Config) (*Recommender, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Recommender{
		client:       client,
		config:       config,
		minRelevance: config.MinRelevance,
		logger:       slog.Default().With("component", "openai-recommender"),
	}, nil
}

// NewRecommender creates a new recommender using the provided configuration.
//
// Returns ai.Recommender interface to enforce abstraction.
func NewRecommender(config *ai.Config) (ai.Recommender, error) {
	return newRecommender(config)
}

// Recommend asks the model to rank the candidate names against the query.
// Names, scores, and reasons come back as JSON; malformed output is repaired
// and reparsed up to 3 times before the call is reported as unavailable.
func (r *Recommender) Recommend(ctx context.Context, query string, candidates []string) ([]ai.Suggestion, error) {
	if len(candidates) == 0 {
		return nil, ai.ErrNoCandidates
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	query = scrubString(query)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt(candidates)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result answer
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			r.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, fmt.Errorf("%w: %w", ai.ErrRecommenderUnavailable, err)
		}

		if len(response.Choices) < 1 {
			r.logger.Debug("no choices returned from model")
			return []ai.Suggestion{}, nil
		}

		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			r.logger.Warn("error parsing recommender response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		r.logger.Error("failed to parse recommender response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %w", ai.ErrRecommenderUnavailable, lastErr)
	}

	// Filter by relevance threshold and drop unusable rows
	suggestions := make([]ai.Suggestion, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		name := strings.TrimSpace(rec.Name)
		if name == "" || rec.RelevanceScore < r.minRelevance {
			continue
		}
		suggestions = append(suggestions, ai.Suggestion{
			Name:           name,
			RelevanceScore: rec.RelevanceScore,
			MatchReason:    strings.TrimSpace(rec.MatchReason),
		})
	}

	// Sort by relevance (descending)
	slices.SortFunc(suggestions, func(a, b ai.Suggestion) int {
		return b.RelevanceScore - a.RelevanceScore
	})

	r.logger.Debug("recommendations received",
		"total", len(result.Recommendations),
		"kept", len(suggestions))

	return suggestions, nil
}
