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
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
// It stores the source documents plus the derived attribute records both
// indexes read for filter predicates.
type CandidateRepository struct {
	backend *Backend
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) *CandidateRepository {
	return &CandidateRepository{backend: backend}
}

// Close releases resources. The shared backend is closed by its owner.
func (r *CandidateRepository) Close() error {
	return nil
}

// PutCandidate stores or replaces a candidate document together with its
// searchable attribute record.
func (r *CandidateRepository) PutCandidate(ctx context.Context, doc *core.CandidateDocument) error {
	if err := core.ValidateCandidateDocument(doc); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		old, err := r.readCandidate(tx, doc.Id)
		if err != nil {
			return err
		}
		if old != nil {
			doc.InsertedAt = old.InsertedAt
		} else {
			doc.InsertedAt = now
		}
		doc.UpdatedAt = now

		if err := tx.Set(makeCandidateDocKey(doc.Id), storage.MarshalCandidateDocument(doc)); err != nil {
			return err
		}

		attrs := doc.Attributes()
		if err := tx.Set(makeCandidateAttrKey(doc.Id), storage.MarshalCandidateAttributes(&attrs)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetCandidate retrieves a candidate document by id.
func (r *CandidateRepository) GetCandidate(ctx context.Context, id core.ID) (*core.CandidateDocument, error) {
	var doc *core.CandidateDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = r.readCandidate(tx, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteCandidate removes a candidate document and its attribute record.
func (r *CandidateRepository) DeleteCandidate(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCandidateDocKey(id)); err != nil {
			return err
		}
		if err := tx.Delete(makeCandidateAttrKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListCandidates returns up to limit documents with ids strictly greater
// than after, ordered by id ascending.
func (r *CandidateRepository) ListCandidates(ctx context.Context, after core.ID, limit int) ([]*core.CandidateDocument, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var docs []*core.CandidateDocument
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateDocPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last processed candidate. Keys are BigEndian ids,
		// so lexicographic order is id order.
		start := makeCandidateDocKey(after)
		for iter.Seek(start); iter.Valid(); iter.Next() {
			if err := checkCancelled(ctx); err != nil {
				return err
			}

			id, ok := parseBigEndianIDKey(iter.Item().Key(), candidateDocPrefix)
			if !ok || id <= after {
				continue
			}

			var doc *core.CandidateDocument
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalCandidateDocument(val)
				return err
			})
			if err != nil {
				return err
			}

			docs = append(docs, doc)
			if len(docs) >= limit {
				return nil
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CountCandidates returns the number of stored candidate documents.
func (r *CandidateRepository) CountCandidates(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(candidateDocPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := checkCancelled(ctx); err != nil {
				return err
			}
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CandidateRepository) readCandidate(tx *badger.Txn, id core.ID) (*core.CandidateDocument, error) {
	item, err := tx.Get(makeCandidateDocKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc *core.CandidateDocument
	err = item.Value(func(val []byte) error {
		var err error
		doc, err = storage.UnmarshalCandidateDocument(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
