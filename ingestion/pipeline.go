package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/lawdex/lawdex/core"
	"github.com/lawdex/lawdex/storage"
)

// batchSize is the number of entries written per storage transaction.
const batchSize = 64

// Pipeline validates and stores catalog resource entries.
// Writes are performed concurrently in batches using a worker pool.
type Pipeline struct {
	repository storage.ResourceRepository
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.ResourceRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		pool:       pool,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates and stores the given entries, returning the number stored.
// Invalid entries are logged and skipped. Batches are written concurrently;
// Ingest blocks until every batch has been committed. The first storage error
// is returned, but remaining batches still run to completion.
func (p *Pipeline) Ingest(ctx context.Context, entries []core.ResourceEntry) (int, error) {
	valid := make([]*core.ResourceEntry, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		if err := core.ValidateResourceEntry(&entry); err != nil {
			p.logger.Warn("skipping invalid catalog entry", "name", entry.Name, "err", err)
			continue
		}
		valid = append(valid, &entry)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		stored   int
		firstErr error
	)

	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			added, err := p.repository.AddResources(ctx, batch...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("error storing catalog batch", "size", len(batch), "err", err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			stored += len(added)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	return stored, firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
