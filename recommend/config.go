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


package recommend

import (
	"errors"
	"time"
)

// LocalScoring holds the hand-tuned weights of one local relevance scorer.
// Final relevance = min(Ceiling, BaseRelevance + raw*RelevanceStep), where
// raw accumulates the bonuses below; entries with raw 0 are excluded.
type LocalScoring struct {
	// BaseRelevance anchors the relevance formula.
	BaseRelevance int

	// Ceiling caps the relevance this scorer can emit.
	Ceiling int

	// SubstringBonus is added when the normalized query and name contain
	// each other in either direction.
	SubstringBonus int

	// TopicBoost is added on top of SubstringBonus when the name is a
	// general topical entry rather than a jurisdiction-specific variant.
	TopicBoost int

	// TokenWeight is added per query token (length >= 3) found in the
	// combined name, description, and alias token set.
	TokenWeight int

	// AliasBonus is added once when any alias substring-matches the query
	// in either direction.
	AliasBonus int

	// RelevanceStep scales the raw score into the relevance range.
	RelevanceStep int
}

// Config holds the tunables of the matching and ranking engine.
// The defaults encode the curated scoring policy; they are configuration,
// not constants, so tests and deployments can adjust them.
type Config struct {
	// ShortlistCap bounds the candidate list handed to the external
	// recommender. Default: 60.
	ShortlistCap int

	// RelevanceFloor is the minimum relevance a merged result must carry to
	// be returned. Default: 60.
	RelevanceFloor int

	// MaxResults bounds the final ranked result list. Default: 8.
	MaxResults int

	// LocalResultCap bounds each local scorer's contribution. Default: 5.
	LocalResultCap int

	// RecommenderTimeout bounds the external recommender call; after it
	// expires the engine proceeds with local scoring only. Default: 40s.
	RecommenderTimeout time.Duration

	// LexicalSubstringBonus is added by the lexical scorer when the haystack
	// contains the full normalized query. Default: 2.
	LexicalSubstringBonus int

	// GuideScoring weights the subject guide scorer. Default ceiling: 98.
	GuideScoring LocalScoring

	// AssetScoring weights the guide asset scorer. Default ceiling: 90.
	AssetScoring LocalScoring
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithShortlistCap sets the recommender candidate list bound.
func WithShortlistCap(cap int) Option {
	return func(c *Config) {
		c.ShortlistCap = cap
	}
}

// WithRelevanceFloor sets the minimum relevance of returned results.
func WithRelevanceFloor(floor int) Option {
	return func(c *Config) {
		c.RelevanceFloor = floor
	}
}

// WithMaxResults sets the final result count bound.
func WithMaxResults(max int) Option {
	return func(c *Config) {
		c.MaxResults = max
	}
}

// WithLocalResultCap sets the per-scorer local result bound.
func WithLocalResultCap(cap int) Option {
	return func(c *Config) {
		c.LocalResultCap = cap
	}
}

// WithRecommenderTimeout sets the external recommender call bound.
func WithRecommenderTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.RecommenderTimeout = timeout
	}
}

// DefaultConfig returns the curated scoring policy.
func DefaultConfig() *Config {
	return &Config{
		ShortlistCap:          60,
		RelevanceFloor:        60,
		MaxResults:            8,
		LocalResultCap:        5,
		RecommenderTimeout:    40 * time.Second,
		LexicalSubstringBonus: 2,
		GuideScoring: LocalScoring{
			BaseRelevance:  60,
			Ceiling:        98,
			SubstringBonus: 10,
			TopicBoost:     20,
			TokenWeight:    2,
			AliasBonus:     5,
			RelevanceStep:  3,
		},
		AssetScoring: LocalScoring{
			BaseRelevance:  50,
			Ceiling:        90,
			SubstringBonus: 10,
			TopicBoost:     15,
			TokenWeight:    2,
			AliasBonus:     5,
			RelevanceStep:  3,
		},
	}
}

// NewConfig creates a Config with the default policy and applies the
// provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ShortlistCap < 1 {
		return errors.New("recommend config: ShortlistCap must be positive")
	}
	if c.MaxResults < 1 {
		return errors.New("recommend config: MaxResults must be positive")
	}
	if c.LocalResultCap < 1 {
		return errors.New("recommend config: LocalResultCap must be positive")
	}
	if c.RelevanceFloor < 0 || c.RelevanceFloor > 100 {
		return errors.New("recommend config: RelevanceFloor must be between 0 and 100")
	}
	if c.RecommenderTimeout <= 0 {
		return errors.New("recommend config: RecommenderTimeout must be positive")
	}
	return nil
}
