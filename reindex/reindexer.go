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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// DefaultCheckpointName is the checkpoint slot used when the config does not
// name one.
const DefaultCheckpointName = "reindex"

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of candidates to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of candidates)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// CheckpointName identifies the resume marker for this run. Two runs
	// with the same name share progress.
	CheckpointName string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		CheckpointName: DefaultCheckpointName,
	}
}

// Reindexer orchestrates re-chunking and re-embedding of the whole candidate
// corpus, typically after an embedding model change. Progress is
// checkpointed per batch so an interrupted run resumes where it stopped.
type Reindexer struct {
	candidates  storage.CandidateRepository
	checkpoints storage.CheckpointRepository
	config      *Config
	progress    io.Writer
	processor   *BatchProcessor
	iterator    *CandidateIterator
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(
	candidates storage.CandidateRepository,
	checkpoints storage.CheckpointRepository,
	vectors storage.VectorIndex,
	keywords storage.KeywordIndex,
	embedder ai.Embedder,
	config *Config,
	progress io.Writer,
) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}
	if config.CheckpointName == "" {
		config.CheckpointName = DefaultCheckpointName
	}

	processor := NewBatchProcessor(vectors, keywords, embedder, config.MaxRetries, config.RetryDelay)
	iterator := NewCandidateIterator(candidates, config.BatchSize)

	return &Reindexer{
		candidates:  candidates,
		checkpoints: checkpoints,
		config:      config,
		progress:    progress,
		processor:   processor,
		iterator:    iterator,
	}
}

// Run executes the reindexing operation. Every candidate document in the
// repository is re-chunked and re-embedded with the configured embedder.
// If a checkpoint from an interrupted run exists, processing resumes after
// the last completed batch; on success the checkpoint is cleared.
func (r *Reindexer) Run(ctx context.Context) error {
	total, err := r.candidates.CountCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to count candidates: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No candidates found in database (0 candidates)\n")
		return nil
	}

	var after core.ID
	processed := 0

	checkpoint, err := r.checkpoints.LoadCheckpoint(ctx, r.config.CheckpointName)
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if checkpoint != nil {
		after = checkpoint.LastId
		processed = int(checkpoint.Processed)
		fmt.Fprintf(r.progress, "Resuming reindex after candidate %d (%d already processed)\n",
			after, processed)
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d candidates (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()
	tracker.Update(processed)

	err = r.iterator.ForEach(ctx, after, func(docs []*core.CandidateDocument) error {
		if err := r.processor.Process(ctx, docs); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(docs)
		tracker.Update(processed)

		return r.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
			Name:      r.config.CheckpointName,
			LastId:    docs[len(docs)-1].Id,
			Processed: uint64(processed),
		})
	})

	if err != nil {
		return err
	}

	if err := r.checkpoints.DeleteCheckpoint(ctx, r.config.CheckpointName); err != nil {
		return fmt.Errorf("failed to clear checkpoint: %w", err)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d candidates in %v (%.1f candidates/sec)\n",
		processed, elapsed.Round(time.Second), float64(processed)/elapsed.Seconds())

	return nil
}
