// Package mock provides test double implementations of the AI recommender
// interface.
//
// MockRecommender runs without external AI services and behaves
// deterministically: by default it echoes the first few candidate names with
// descending scores. Tests inject custom behavior through the RecommendFunc
// field and assert on CallCount().
//
//	rec := mock.NewMockRecommender().
//	    WithRecommendFunc(func(ctx context.Context, query string, candidates []string) ([]ai.Suggestion, error) {
//	        return nil, ai.ErrRecommenderUnavailable
//	    })
package mock
