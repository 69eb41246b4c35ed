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


package badger

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// VectorIndex implements storage.VectorIndex for BadgerDB.
// Entries are stored per chunk under candidate-contiguous keys so a
// candidate's entries can be replaced in one transaction.
type VectorIndex struct {
	backend *Backend
}

var _ storage.VectorIndex = (*VectorIndex)(nil)

// NewVectorIndex creates a new VectorIndex.
func NewVectorIndex(backend *Backend) *VectorIndex {
	return &VectorIndex{backend: backend}
}

// Close releases resources. The shared backend is closed by its owner.
func (v *VectorIndex) Close() error {
	return nil
}

// Upsert replaces all vector entries for a candidate atomically. All
// embedded chunks in one call must share one vector width; unembedded
// chunks are stored for evidence lookup only.
func (v *VectorIndex) Upsert(ctx context.Context, candidateID core.ID, chunks []*core.Chunk) error {
	width := 0
	for _, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			continue
		}
		if width == 0 {
			width = len(chunk.Vector)
			continue
		}
		if len(chunk.Vector) != width {
			return fmt.Errorf("%w: chunk %d has width %d, expected %d",
				storage.ErrDimensionMismatch, chunk.Id, len(chunk.Vector), width)
		}
	}

	return v.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteByPrefix(tx, makeVectorCandidatePrefix(candidateID)); err != nil {
			return err
		}

		for _, chunk := range chunks {
			key := makeVectorEntryKey(candidateID, chunk.Id)
			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Delete removes all vector entries for a candidate.
func (v *VectorIndex) Delete(ctx context.Context, candidateID core.ID) error {
	return v.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteByPrefix(tx, makeVectorCandidatePrefix(candidateID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves one stored chunk.
func (v *VectorIndex) GetChunk(ctx context.Context, candidateID, chunkID core.ID) (*core.Chunk, error) {
	var chunk *core.Chunk
	err := v.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorEntryKey(candidateID, chunkID))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// Query returns up to k chunk matches by cosine similarity descending,
// restricted to candidates matching the filter predicates.
func (v *VectorIndex) Query(ctx context.Context, vector []float32, filters *storage.FilterSet, k int) ([]*core.VectorHit, error) {
	if len(vector) == 0 || k <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var hits []*core.VectorHit

	err := v.backend.WithTx(func(tx *badger.Txn) error {
		// Filter decisions are cached per candidate within the scan.
		admitted := make(map[core.ID]bool)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(vectorEntryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := checkCancelled(ctx); err != nil {
				return err
			}

			item := iter.Item()
			candidateID, chunkID, ok := parseVectorEntryKey(item.Key())
			if !ok {
				continue
			}

			pass, seen := admitted[candidateID]
			if !seen {
				var err error
				pass, err = candidateMatchesFilters(tx, candidateID, filters)
				if err != nil {
					return err
				}
				admitted[candidateID] = pass
			}
			if !pass {
				continue
			}

			var chunk *core.Chunk
			err := item.Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}

			// Chunks whose embedding failed at ingestion carry no vector
			// and cannot contribute to the semantic signal.
			if len(chunk.Vector) != len(vector) {
				continue
			}

			hits = append(hits, &core.VectorHit{
				CandidateId: candidateID,
				ChunkId:     chunkID,
				Score:       cosineSimilarity(vector, chunk.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, ties by candidate id then chunk id
	// ascending for determinism.
	slices.SortFunc(hits, func(a, b *core.VectorHit) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if a.CandidateId != b.CandidateId {
			if a.CandidateId < b.CandidateId {
				return -1
			}
			return 1
		}
		if a.ChunkId < b.ChunkId {
			return -1
		}
		if a.ChunkId > b.ChunkId {
			return 1
		}
		return 0
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors
// of equal length.
func cosineSimilarity(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// candidateMatchesFilters loads the candidate's attributes and evaluates
// the filter predicates. Candidates without a stored attribute record are
// admitted only by an empty filter set.
func candidateMatchesFilters(tx *badger.Txn, candidateID core.ID, filters *storage.FilterSet) (bool, error) {
	if filters.Empty() {
		return true, nil
	}

	item, err := tx.Get(makeCandidateAttrKey(candidateID))
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var attrs *core.CandidateAttributes
	err = item.Value(func(val []byte) error {
		var err error
		attrs, err = storage.UnmarshalCandidateAttributes(val)
		return err
	})
	if err != nil {
		return false, err
	}
	return filters.Matches(attrs), nil
}

// deleteByPrefix removes every key with the given prefix within the transaction.
func deleteByPrefix(tx *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
