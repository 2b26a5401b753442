package recommend

import (
	"context"
	"log/slog"

	"github.com/lawdex/lawdex/ai"
	"github.com/lawdex/lawdex/catalog"
	"github.com/lawdex/lawdex/core"
)

// Catalogs holds the three resource pools the engine draws from.
type Catalogs struct {
	// External holds subscription databases and public legal-help services.
	// These are shortlisted and handed to the external recommender.
	External []core.ResourceEntry

	// Guides holds locally curated subject guides, scored directly.
	Guides []core.ResourceEntry

	// Assets holds individual guide pages and documents, scored directly.
	Assets []core.ResourceEntry
}

// Engine matches a research query against the resource catalogs and returns
// a ranked, enriched result list.
type Engine struct {
	index       *catalog.Index
	whitelist   *catalog.Whitelist
	recommender ai.Recommender
	catalogs    Catalogs
	config      *Config
	logger      *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithConfig replaces the default scoring policy.
func WithConfig(config *Config) EngineOption {
	return func(e *Engine) error {
		if config == nil {
			config = DefaultConfig()
		}
		if err := config.Validate(); err != nil {
			return err
		}
		e.config = config
		return nil
	}
}

// NewEngine creates a new matching and ranking engine.
func NewEngine(
	index *catalog.Index,
	whitelist *catalog.Whitelist,
	recommender ai.Recommender,
	catalogs Catalogs,
	opts ...EngineOption,
) (*Engine, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if whitelist == nil {
		return nil, ErrWhitelistRequired
	}
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}

	e := &Engine{
		index:       index,
		whitelist:   whitelist,
		recommender: recommender,
		catalogs:    catalogs,
		config:      DefaultConfig(),
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Process matches the query against all catalogs and returns up to
// MaxResults ranked results.
func (e *Engine) Process(ctx context.Context, query string) ([]core.RankedResult, error) {
	return e.ProcessWithMonitor(ctx, query, nil)
}

// ProcessWithMonitor matches the query with monitoring. The monitor receives
// callbacks at each stage of the pipeline.
//
// The external recommender is advisory: when it fails or times out the
// engine logs a warning and proceeds with the local scorers alone, so a
// query always produces whatever the local catalogs can support.
func (e *Engine) ProcessWithMonitor(ctx context.Context, query string, monitor Monitor) ([]core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Shortlist external candidates for the recommender
	candidates := Shortlist(query, e.catalogs.External, e.config.ShortlistCap, e.config.LexicalSubstringBonus)
	monitor.ShortlistBuilt(candidates)

	// 2. External recommendation, bounded and fallible
	external := e.recommendExternal(ctx, query, candidates, monitor)

	// 3. Local scorers run regardless of recommender outcome
	guides := scoreLocal(query, e.catalogs.Guides, e.config.GuideScoring,
		core.TypeLocalGuide, "Locally curated subject guide", e.config.LocalResultCap)
	monitor.GuidesScored(guides)

	assets := scoreLocal(query, e.catalogs.Assets, e.config.AssetScoring,
		core.TypeLibGuideAsset, "Guide page matching the research topic", e.config.LocalResultCap)
	monitor.AssetsScored(assets)

	// 4. Merge, enrich, finish
	merged := mergeResults(e.config.RelevanceFloor, e.config.MaxResults, external, guides, assets)
	enriched := enrichResults(e.index, merged)

	monitor.Finish(enriched)
	return enriched, nil
}

// recommendExternal calls the external recommender and validates its
// suggestions against the whitelist. Suggestions naming resources outside
// the candidate pool are hallucinations and are dropped.
func (e *Engine) recommendExternal(ctx context.Context, query string, candidates []string, monitor Monitor) []core.RankedResult {
	if len(candidates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.config.RecommenderTimeout)
	defer cancel()

	suggestions, err := e.recommender.Recommend(ctx, query, candidates)
	if err != nil {
		e.logger.Warn("external recommender failed, continuing with local scoring", "query", query, "err", err)
		monitor.RecommenderFailed(err)
		return nil
	}
	monitor.SuggestionsReceived(suggestions)

	results := make([]core.RankedResult, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if !e.whitelist.IsPlausible(suggestion.Name) {
			e.logger.Warn("dropping suggestion not present in any catalog", "name", suggestion.Name)
			monitor.SuggestionRejected(suggestion.Name)
			continue
		}
		results = append(results, core.RankedResult{
			Name:           suggestion.Name,
			RelevanceScore: core.ClampRelevance(suggestion.RelevanceScore),
			MatchReason:    suggestion.MatchReason,
		})
	}
	return results
}
