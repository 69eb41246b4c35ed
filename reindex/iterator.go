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

	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

const (
	// DefaultBatchSize is the default number of candidates to fetch in each batch
	DefaultBatchSize = 100
)

// CandidateIterator walks the candidate corpus in id order, one batch at a
// time, so reindexing never holds the full corpus in memory.
type CandidateIterator struct {
	repo      storage.CandidateRepository
	batchSize int
}

// NewCandidateIterator creates a new candidate iterator.
// batchSize: number of candidates to fetch in each batch (must be > 0)
func NewCandidateIterator(repo storage.CandidateRepository, batchSize int) *CandidateIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &CandidateIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all candidates with ids strictly greater than after,
// calling fn for each batch. Iteration stops on first error from fn or when
// the corpus is exhausted. Context cancellation is checked between batches.
func (it *CandidateIterator) ForEach(ctx context.Context, after core.ID, fn func([]*core.CandidateDocument) error) error {
	cursor := after
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch, err := it.repo.ListCandidates(ctx, cursor, it.batchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		if err := fn(batch); err != nil {
			return err
		}

		cursor = batch[len(batch)-1].Id
	}
}
