package lawdex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawdex/lawdex/ai"
	"github.com/lawdex/lawdex/ai/mock"
	"github.com/lawdex/lawdex/core"
)

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	opts = append([]ServiceOption{
		WithInMemoryStorage(),
		WithRecommender(mock.NewMockRecommender()),
	}, opts...)

	service, err := NewService("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })
	return service
}

func seedTestCatalog(t *testing.T, service *Service) {
	t.Helper()
	pipeline, err := service.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	stored, err := pipeline.Ingest(context.Background(), []core.ResourceEntry{
		{
			Name:        "Westlaw Edge",
			Aliases:     []string{"Westlaw"},
			URL:         "www.westlaw.com",
			Description: "Comprehensive legal research platform",
			Type:        core.TypeExternalDatabase,
		},
		{
			Name:        "Nolo",
			URL:         "www.nolo.com",
			Description: "Plain-language legal information for the public",
			Type:        core.TypeLegalHelp,
		},
		{
			Name:        "Contract Law",
			URL:         "guides.example.edu/contracts",
			Description: "Researching contract formation, breach, and remedies",
			Type:        core.TypeLocalGuide,
		},
		{
			Name:        "Contract Formation Checklist",
			URL:         "guides.example.edu/contracts/checklist",
			Description: "Checklist covering contract law formation basics",
			Type:        core.TypeLibGuideAsset,
		},
	})
	require.NoError(t, err)
	require.Equal(t, 4, stored)
	require.NoError(t, service.Reload(context.Background()))
}

func TestNewService(t *testing.T) {
	t.Run("create new service", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_catalog")
		service, err := NewService(tmpDir, WithRecommender(mock.NewMockRecommender()))
		require.NoError(t, err)
		require.NotNil(t, service)
		defer service.Close()

		assert.NotNil(t, service.Repository())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0644))

		service, err := NewService(tmpFile, WithRecommender(mock.NewMockRecommender()))
		assert.Error(t, err)
		assert.Nil(t, service)
	})

	t.Run("default recommender from ai config", func(t *testing.T) {
		service, err := NewService("",
			WithInMemoryStorage(),
			WithAIConfig(ai.NewConfig(ai.WithHost("http://localhost:11434"))),
		)
		require.NoError(t, err)
		defer service.Close()
		assert.NotNil(t, service)
	})
}

func TestService_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("query over seeded catalog", func(t *testing.T) {
		service := newTestService(t)
		seedTestCatalog(t, service)

		results, err := service.Query(ctx, "contract law")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Contract Law", results[0].Name)
		assert.Equal(t, core.TypeLocalGuide, results[0].Type)
	})

	t.Run("empty store yields empty results", func(t *testing.T) {
		service := newTestService(t)

		results, err := service.Query(ctx, "contract law")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("reload picks up new entries", func(t *testing.T) {
		service := newTestService(t)

		results, err := service.Query(ctx, "contract law")
		require.NoError(t, err)
		require.Empty(t, results)

		seedTestCatalog(t, service)

		results, err = service.Query(ctx, "contract law")
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})
}

func TestService_Close(t *testing.T) {
	service, err := NewService("", WithInMemoryStorage(), WithRecommender(mock.NewMockRecommender()))
	require.NoError(t, err)
	assert.NoError(t, service.Close())
}
