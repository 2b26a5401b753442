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


package lawdex

import (
	"context"
	"log/slog"

	"github.com/lawdex/lawdex/ai"
	"github.com/lawdex/lawdex/ai/openai"
	"github.com/lawdex/lawdex/catalog"
	"github.com/lawdex/lawdex/core"
	"github.com/lawdex/lawdex/ingestion"
	"github.com/lawdex/lawdex/recommend"
	"github.com/lawdex/lawdex/storage"
	"github.com/lawdex/lawdex/storage/badger"
)

// Service ties the catalog store, the matching engine, and the external
// recommender together behind one handle.
type Service struct {
	backend     *badger.Backend
	repo        storage.ResourceRepository
	recommender ai.Recommender
	engine      *recommend.Engine
	config      *recommend.Config
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig     *ai.Config
	engineConfig *recommend.Config
	recommender  ai.Recommender
	inMemory     bool
}

// WithAIConfig sets the external recommender configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEngineConfig sets the matching and ranking configuration.
func WithEngineConfig(config *recommend.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.engineConfig = config
		}
	}
}

// WithRecommender substitutes the external recommender. Used by tests and
// deployments that bring their own provider.
func WithRecommender(recommender ai.Recommender) ServiceOption {
	return func(o *serviceOptions) {
		o.recommender = recommender
	}
}

// WithInMemoryStorage keeps the catalog store off disk.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens the catalog store at filePath and builds the matching
// engine from the stored catalogs. Call Reload after seeding new entries to
// rebuild the engine.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		aiConfig:     ai.DefaultConfig(),
		engineConfig: recommend.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create resource repository
	repo, err := badger.NewResourceRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create recommender unless one was injected
	recommender := options.recommender
	if recommender == nil {
		recommender, err = openai.NewRecommender(options.aiConfig)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	s := &Service{
		backend:     backend,
		repo:        repo,
		recommender: recommender,
		config:      options.engineConfig,
		logger:      slog.Default(),
	}

	if err := s.Reload(context.Background()); err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return s, nil
}

// Reload re-reads the stored catalogs and rebuilds the matching engine.
// Not safe to call concurrently with Query.
func (s *Service) Reload(ctx context.Context) error {
	catalogs, err := s.loadCatalogs(ctx)
	if err != nil {
		return err
	}

	index := catalog.BuildIndex(
		[][]core.ResourceEntry{catalogs.External, catalogs.Guides, catalogs.Assets},
		catalog.WithLogger(s.logger),
	)
	whitelist := catalog.NewWhitelist(catalogs.External, catalogs.Guides, catalogs.Assets)

	engine, err := recommend.NewEngine(index, whitelist, s.recommender, catalogs,
		recommend.WithConfig(s.config),
		recommend.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	s.engine = engine
	return nil
}

// loadCatalogs partitions the stored entries into the three engine pools.
// Public legal-help services sit in the external pool alongside subscription
// databases: both are recommended via the external AI path.
func (s *Service) loadCatalogs(ctx context.Context) (recommend.Catalogs, error) {
	all, err := s.repo.ListResources(ctx)
	if err != nil {
		return recommend.Catalogs{}, err
	}

	var catalogs recommend.Catalogs
	for _, entry := range all {
		switch entry.Type {
		case core.TypeLocalGuide:
			catalogs.Guides = append(catalogs.Guides, *entry)
		case core.TypeLibGuideAsset:
			catalogs.Assets = append(catalogs.Assets, *entry)
		default:
			catalogs.External = append(catalogs.External, *entry)
		}
	}
	return catalogs, nil
}

// Query matches a research query against the catalogs and returns ranked,
// enriched results.
func (s *Service) Query(ctx context.Context, query string) ([]core.RankedResult, error) {
	return s.engine.Process(ctx, query)
}

// QueryWithMonitor is Query with stage callbacks.
func (s *Service) QueryWithMonitor(ctx context.Context, query string, monitor recommend.Monitor) ([]core.RankedResult, error) {
	return s.engine.ProcessWithMonitor(ctx, query, monitor)
}

// Repository exposes the underlying resource repository.
func (s *Service) Repository() storage.ResourceRepository {
	return s.repo
}

// NewIngestionPipeline creates a pipeline that seeds catalog entries into
// this service's store.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.repo, opts...)
}

func (s *Service) Close() error {
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing resource repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
