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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lawdex/lawdex"
	"github.com/lawdex/lawdex/ai"
	"github.com/lawdex/lawdex/core"
	"github.com/lawdex/lawdex/ingestion"
	"github.com/lawdex/lawdex/recommend"
	"github.com/lawdex/lawdex/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "lawdex",
		Usage: "Legal research resource matching and ranking",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load catalog source files into the store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to catalog database directory",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "JSON catalog source file (repeatable)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for batch writes",
						Value: 2,
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Match a research query against the catalogs",
				ArgsUsage: "<query terms>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to catalog database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible chat completion host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Model identifier for recommendations",
						Value: "qwen2.5:3b",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Recommender call timeout",
						Value: 40 * time.Second,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of results to return",
						Value: 8,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored catalog entries",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to catalog database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Filter by type tag (external-database, local-guide, libguide-asset, legal-help)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// sourceEntry is the on-disk JSON shape of one catalog row.
type sourceEntry struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
}

func loadSourceFile(path string) ([]core.ResourceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	var rows []sourceEntry
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse source file %s: %w", path, err)
	}

	entries := make([]core.ResourceEntry, 0, len(rows))
	for _, row := range rows {
		tag, err := core.ParseTypeTag(row.Type)
		if err != nil {
			return nil, fmt.Errorf("source file %s, entry %q: %w", path, row.Name, err)
		}
		entries = append(entries, core.ResourceEntry{
			Name:        row.Name,
			Aliases:     row.Aliases,
			URL:         row.URL,
			Description: row.Description,
			Type:        tag,
		})
	}
	return entries, nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewResourceRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	pipeline, err := ingestion.NewPipeline(repo, ingestion.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	total := 0
	for _, path := range c.StringSlice("file") {
		entries, err := loadSourceFile(path)
		if err != nil {
			return err
		}

		stored, err := pipeline.Ingest(ctx, entries)
		if err != nil {
			return fmt.Errorf("failed to store entries from %s: %w", path, err)
		}

		fmt.Fprintf(os.Stderr, "%s: stored %d of %d entries\n", path, stored, len(entries))
		total += stored
	}

	fmt.Fprintf(os.Stderr, "seeded %d entries\n", total)
	return nil
}

func queryCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query terms are required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithTimeout(c.Duration("timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	engineConfig := recommend.NewConfig(
		recommend.WithMaxResults(c.Int("max-results")),
		recommend.WithRecommenderTimeout(c.Duration("timeout")),
	)

	service, err := lawdex.NewService(c.String("db"),
		lawdex.WithAIConfig(aiConfig),
		lawdex.WithEngineConfig(engineConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer service.Close()

	results, err := service.Query(context.Background(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	fmt.Printf("Found %d matches\n", len(results))
	for i, result := range results {
		fmt.Printf("%d: %s [%d] (%s)\n", i+1, result.Name, result.RelevanceScore, result.Type)
		if result.URL != "" {
			fmt.Printf("   %s\n", result.URL)
		}
		if result.MatchReason != "" {
			fmt.Printf("   %s\n", result.MatchReason)
		}
	}
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewResourceRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	var entries []*core.ResourceEntry
	if label := c.String("type"); label != "" {
		tag, err := core.ParseTypeTag(label)
		if err != nil {
			return err
		}
		entries, err = repo.ListResourcesByType(ctx, tag)
		if err != nil {
			return err
		}
	} else {
		entries, err = repo.ListResources(ctx)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		fmt.Printf("%s (%s)\n", entry.Name, entry.Type)
	}
	fmt.Fprintf(os.Stderr, "%d entries\n", len(entries))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
