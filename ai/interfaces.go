package ai

import "context"

// Recommender suggests catalog resources for a free-text query.
// Implementations must be thread-safe for concurrent use.
//
// The candidates slice is the allowlist shortlist the recommender is
// constrained to choose from. Implementations are untrusted: callers must
// validate every returned name before surfacing it, and must treat any error
// or empty result as "no AI suggestions" rather than a hard failure.
type Recommender interface {
	// Recommend returns ranked suggestions for the query, drawn from the
	// candidate names. Returns an empty slice when nothing fits.
	Recommend(ctx context.Context, query string, candidates []string) ([]Suggestion, error)
}

// Suggestion is a single recommendation returned by a Recommender.
type Suggestion struct {
	// Name is the suggested resource name. It should match one of the
	// candidate names, but formatting drift is common and tolerated.
	Name string

	// RelevanceScore is the recommender's confidence, an integer from
	// 1 (marginal) to 100 (certain match).
	RelevanceScore int

	// MatchReason is a short human-readable explanation of the match.
	MatchReason string
}
