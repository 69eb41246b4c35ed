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
	"errors"
	"fmt"
	"time"

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/ingestion"
	"github.com/talentgrid/talentsearch/storage"
)

// BatchProcessor re-derives the index entries for batches of candidates:
// each candidate is re-chunked from its stored document, all chunk texts are
// embedded in one batched call, and both indexes are replaced.
type BatchProcessor struct {
	vectors        storage.VectorIndex
	keywords       storage.KeywordIndex
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(vectors storage.VectorIndex, keywords storage.KeywordIndex, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		vectors:        vectors,
		keywords:       keywords,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-chunks, re-embeds, and re-indexes a batch of candidates.
// A candidate whose document has become empty is skipped, not fatal.
func (bp *BatchProcessor) Process(ctx context.Context, docs []*core.CandidateDocument) error {
	if len(docs) == 0 {
		return nil
	}

	type candidateChunks struct {
		id     core.ID
		chunks []*core.Chunk
	}

	batch := make([]candidateChunks, 0, len(docs))
	var texts []string
	for _, doc := range docs {
		chunks, err := ingestion.BuildChunks(doc)
		if err != nil {
			if errors.Is(err, core.ErrEmptyDocument) {
				continue
			}
			return fmt.Errorf("chunking candidate %d: %w", doc.Id, err)
		}
		batch = append(batch, candidateChunks{id: doc.Id, chunks: chunks})
		for _, chunk := range chunks {
			texts = append(texts, chunk.Text)
		}
	}
	if len(batch) == 0 {
		return nil
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("%w: failed to generate embeddings after %d attempts: %w",
			core.ErrEmbeddingUnavailable, bp.maxRetries, err)
	}

	if len(embeddings) != len(texts) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(texts), len(embeddings))
	}

	next := 0
	for _, cand := range batch {
		for _, chunk := range cand.chunks {
			chunk.Vector = embeddings[next]
			next++
		}

		if err := bp.vectors.Upsert(ctx, cand.id, cand.chunks); err != nil {
			return fmt.Errorf("updating vector index for candidate %d: %w", cand.id, err)
		}
		if err := bp.keywords.Index(ctx, cand.id, cand.chunks); err != nil {
			return fmt.Errorf("updating keyword index for candidate %d: %w", cand.id, err)
		}
	}

	return nil
}
