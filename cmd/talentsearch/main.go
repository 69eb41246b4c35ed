// Copyright 2025 TalentGrid
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

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/talentgrid/talentsearch"
	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/reindex"
	"github.com/talentgrid/talentsearch/search"
)

func main() {
	app := &cli.App{
		Name:  "talentsearch",
		Usage: "Hybrid retrieval engine for candidate profiles",
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
				Name:   "ingest",
				Usage:  "Ingest candidate documents from a JSON file",
				Action: ingestCommand,
				Flags: commandFlags(
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON file holding an array of candidate documents",
						Required: true,
					},
				),
			},
			{
				Name:   "delete",
				Usage:  "Remove a candidate and all derived index entries",
				Action: deleteCommand,
				Flags: commandFlags(
					&cli.Uint64Flag{
						Name:     "id",
						Usage:    "Candidate id to delete",
						Required: true,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the candidate pool",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: commandFlags(
					&cli.StringFlag{
						Name:  "rerank-api-key",
						Usage: "Cohere API key; re-ranking is skipped when empty",
						EnvVars: []string{
							"TALENTSEARCH_RERANK_API_KEY",
						},
					},
					&cli.StringFlag{
						Name:  "rerank-model",
						Usage: "Re-ranking model name",
						Value: "rerank-v3.5",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of candidates to return",
						Value:   10,
					},
					&cli.IntFlag{
						Name:  "min-experience",
						Usage: "Minimum years of experience",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "max-experience",
						Usage: "Maximum years of experience",
						Value: -1,
					},
					&cli.StringSliceFlag{
						Name:  "language",
						Usage: "Required spoken language (repeatable; any match qualifies)",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Location substring filter",
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Re-chunk and re-embed every stored candidate",
				Action: reindexCommand,
				Flags: commandFlags(
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of candidates to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N candidates",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "nomic-embed-text",
		},
		&cli.StringSliceFlag{
			Name:  "embedding-fallback-host",
			Usage: "Additional embedding host tried when the primary fails (repeatable)",
		},
	}
}

func commandFlags(extra ...cli.Flag) []cli.Flag {
	flags := append(databaseFlags(), embeddingFlags()...)
	return append(flags, extra...)
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func openDatabase(c *cli.Context) (*talentsearch.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithFallbackEmbeddingHosts(c.StringSlice("embedding-fallback-host")...),
		ai.WithRerankAPIKey(c.String("rerank-api-key")),
		ai.WithRerankModel(c.String("rerank-model")),
	)
	aiConfig.Normalize()
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return talentsearch.NewDatabase(c.String("db"), talentsearch.WithAIConfig(aiConfig))
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	var docs []*core.CandidateDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parsing input file: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	for _, doc := range docs {
		// Documents arriving without an id get a freshly minted one.
		if doc.Id == 0 {
			doc.Id = core.IDFromContent(uuid.NewString())
		}

		receipt, err := pipeline.UpsertCandidate(ctx, doc)
		if err != nil {
			return fmt.Errorf("ingesting candidate %d: %w", doc.Id, err)
		}
		fmt.Printf("candidate %d: %d chunks, %d embedded\n",
			doc.Id, receipt.ChunkCount, receipt.EmbeddedCount)
	}

	fmt.Printf("Ingested %d candidates\n", len(docs))
	return nil
}

func deleteCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	id := core.ID(c.Uint64("id"))
	if err := pipeline.DeleteCandidate(context.Background(), id); err != nil {
		return fmt.Errorf("deleting candidate %d: %w", id, err)
	}

	fmt.Printf("Deleted candidate %d\n", id)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	retriever, err := db.NewRetriever()
	if err != nil {
		return err
	}

	request := &search.SearchRequest{
		Query: query,
		TopK:  c.Int("top-k"),
		Filters: search.UIFilters{
			Languages: c.StringSlice("language"),
			Location:  c.String("location"),
		},
	}
	if min := c.Int("min-experience"); min >= 0 {
		request.Filters.MinExperience = &min
	}
	if max := c.Int("max-experience"); max >= 0 {
		request.Filters.MaxExperience = &max
	}

	result, err := retriever.Search(context.Background(), request)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d candidates (considered %d, reranked: %v)\n",
		len(result.Results), result.TotalConsidered, result.Reranked)
	for i, cand := range result.Results {
		doc, err := db.CandidateRepository().GetCandidate(context.Background(), cand.CandidateId)
		if err != nil {
			fmt.Printf("%d: candidate %d [%0.3f]\n", i+1, cand.CandidateId, cand.BlendedScore)
			continue
		}
		fmt.Printf("%d: %s, %s (%d)[%0.3f]\n", i+1, doc.Name, doc.Title, doc.Id, cand.BlendedScore)
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		CheckpointName: reindex.DefaultCheckpointName,
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	return db.NewReindexer(config, os.Stderr).Run(context.Background())
}
