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
	"math"
	"slices"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// BM25 constants. k1 saturates term frequency, b controls chunk-length
// normalization against the corpus average.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

// Chunk score aggregation per candidate: a real match should score across
// multiple sections, so one lucky chunk must not inflate the whole candidate.
const (
	bestChunkWeight = 0.7
	meanChunkWeight = 0.3
)

// KeywordIndex implements storage.KeywordIndex for BadgerDB as an inverted
// index: one posting list per term, plus a per-candidate term registry so
// re-ingestion can retract a candidate's postings in the same transaction
// that writes the replacements.
type KeywordIndex struct {
	backend *Backend
	lexicon *storage.Lexicon

	// Serializes writers. Every write transaction updates the shared
	// stats key and term posting lists, so concurrent writers for
	// different candidates would still conflict under snapshot isolation.
	writeMu sync.Mutex
}

var _ storage.KeywordIndex = (*KeywordIndex)(nil)

// NewKeywordIndex creates a new KeywordIndex with the given lexicon tables.
// A nil lexicon falls back to the built-in recruiting-domain tables.
func NewKeywordIndex(backend *Backend, lexicon *storage.Lexicon) *KeywordIndex {
	if lexicon == nil {
		lexicon = storage.DefaultLexicon()
	}
	return &KeywordIndex{backend: backend, lexicon: lexicon}
}

// Close releases resources. The shared backend is closed by its owner.
func (kw *KeywordIndex) Close() error {
	return nil
}

// Index replaces all keyword entries for a candidate atomically.
func (kw *KeywordIndex) Index(ctx context.Context, candidateID core.ID, chunks []*core.Chunk) error {
	kw.writeMu.Lock()
	defer kw.writeMu.Unlock()

	return kw.backend.WithTx(func(tx *badger.Txn) error {
		stats, err := readIndexStats(tx)
		if err != nil {
			return err
		}

		if err := kw.retractCandidate(tx, candidateID, stats); err != nil {
			return err
		}

		// Tokenize the new chunks, collecting per-term postings and
		// per-chunk lengths.
		additions := make(map[string][]core.Posting)
		lengths := make(core.ChunkLengthList, 0, len(chunks))

		for _, chunk := range chunks {
			terms := kw.lexicon.Tokenize(chunk.Text)
			if len(terms) == 0 {
				continue
			}

			freqs := make(map[string]uint32, len(terms))
			for _, term := range terms {
				freqs[term]++
			}
			for term, tf := range freqs {
				additions[term] = append(additions[term], core.Posting{
					CandidateId: candidateID,
					ChunkId:     chunk.Id,
					TermFreq:    tf,
				})
			}

			lengths = append(lengths, core.ChunkLength{
				ChunkId: chunk.Id,
				Length:  uint32(len(terms)),
			})
			stats.ChunkCount++
			stats.TotalTerms += uint64(len(terms))
		}

		registry := make(core.TermList, 0, len(additions))
		for term, postings := range additions {
			existing, err := readPostingList(tx, term)
			if err != nil {
				return err
			}
			merged := append(existing, postings...)
			if err := tx.Set(makeKeywordTermKey(term), storage.MarshalPostingList(merged)); err != nil {
				return err
			}
			registry = append(registry, term)
		}
		sort.Strings(registry)

		if len(registry) > 0 {
			if err := tx.Set(makeKeywordCandKey(candidateID), storage.MarshalTermList(registry)); err != nil {
				return err
			}
			if err := tx.Set(makeKeywordLengthKey(candidateID), storage.MarshalChunkLengthList(lengths)); err != nil {
				return err
			}
		}

		if err := tx.Set([]byte(keywordStatsKey), storage.MarshalIndexStats(stats)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Delete removes all keyword entries for a candidate.
func (kw *KeywordIndex) Delete(ctx context.Context, candidateID core.ID) error {
	kw.writeMu.Lock()
	defer kw.writeMu.Unlock()

	return kw.backend.WithTx(func(tx *badger.Txn) error {
		stats, err := readIndexStats(tx)
		if err != nil {
			return err
		}
		if err := kw.retractCandidate(tx, candidateID, stats); err != nil {
			return err
		}
		if err := tx.Set([]byte(keywordStatsKey), storage.MarshalIndexStats(stats)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// retractCandidate removes the candidate's postings, registry, and lengths
// within the transaction, decrementing stats accordingly.
func (kw *KeywordIndex) retractCandidate(tx *badger.Txn, candidateID core.ID, stats *core.IndexStats) error {
	registry, err := readTermList(tx, candidateID)
	if err != nil {
		return err
	}
	if registry == nil {
		return nil
	}

	for _, term := range registry {
		postings, err := readPostingList(tx, term)
		if err != nil {
			return err
		}
		kept := postings[:0]
		for _, p := range postings {
			if p.CandidateId != candidateID {
				kept = append(kept, p)
			}
		}
		key := makeKeywordTermKey(term)
		if len(kept) == 0 {
			if err := tx.Delete(key); err != nil {
				return err
			}
			continue
		}
		if err := tx.Set(key, storage.MarshalPostingList(kept)); err != nil {
			return err
		}
	}

	lengths, err := readChunkLengthList(tx, candidateID)
	if err != nil {
		return err
	}
	for _, cl := range lengths {
		if stats.ChunkCount > 0 {
			stats.ChunkCount--
		}
		if stats.TotalTerms >= uint64(cl.Length) {
			stats.TotalTerms -= uint64(cl.Length)
		}
	}

	if err := tx.Delete(makeKeywordCandKey(candidateID)); err != nil {
		return err
	}
	return tx.Delete(makeKeywordLengthKey(candidateID))
}

// Query returns up to k candidate matches scored with BM25.
func (kw *KeywordIndex) Query(ctx context.Context, terms []string, filters *storage.FilterSet, k int) ([]*core.KeywordHit, error) {
	if k <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	if len(terms) == 0 {
		return nil, nil
	}

	type chunkKey struct {
		candidate core.ID
		chunk     core.ID
	}
	chunkScores := make(map[chunkKey]float64)

	err := kw.backend.WithTx(func(tx *badger.Txn) error {
		stats, err := readIndexStats(tx)
		if err != nil {
			return err
		}
		if stats.ChunkCount == 0 {
			return nil
		}
		avgLen := float64(stats.TotalTerms) / float64(stats.ChunkCount)
		n := float64(stats.ChunkCount)

		admitted := make(map[core.ID]bool)
		lengthCache := make(map[core.ID]map[core.ID]uint32)

		chunkLength := func(candidateID, chunkID core.ID) (uint32, error) {
			byChunk, ok := lengthCache[candidateID]
			if !ok {
				lengths, err := readChunkLengthList(tx, candidateID)
				if err != nil {
					return 0, err
				}
				byChunk = make(map[core.ID]uint32, len(lengths))
				for _, cl := range lengths {
					byChunk[cl.ChunkId] = cl.Length
				}
				lengthCache[candidateID] = byChunk
			}
			return byChunk[chunkID], nil
		}

		for _, term := range terms {
			if err := checkCancelled(ctx); err != nil {
				return err
			}

			for _, variant := range kw.lexicon.ExpandTerm(term) {
				postings, err := readPostingList(tx, variant.Term)
				if err != nil {
					return err
				}
				if len(postings) == 0 {
					continue
				}

				df := float64(len(postings))
				idf := math.Log(1 + (n-df+0.5)/(df+0.5))

				boost := variant.Weight
				if kw.lexicon.IsSkill(variant.Term) {
					boost *= kw.lexicon.SkillBoost
				}
				if kw.lexicon.IsTitle(variant.Term) {
					boost *= kw.lexicon.TitleBoost
				}

				for _, p := range postings {
					pass, seen := admitted[p.CandidateId]
					if !seen {
						pass, err = candidateMatchesFilters(tx, p.CandidateId, filters)
						if err != nil {
							return err
						}
						admitted[p.CandidateId] = pass
					}
					if !pass {
						continue
					}

					dl, err := chunkLength(p.CandidateId, p.ChunkId)
					if err != nil {
						return err
					}
					if dl == 0 {
						continue
					}

					tf := float64(p.TermFreq)
					norm := tf * (bm25K1 + 1) / (tf + bm25K1*(1-bm25B+bm25B*float64(dl)/avgLen))
					chunkScores[chunkKey{p.CandidateId, p.ChunkId}] += boost * idf * norm
				}
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Aggregate chunk scores per candidate, keeping the best chunk as the
	// hit's evidence.
	type candidateAgg struct {
		best      float64
		bestChunk core.ID
		sum       float64
		count     int
	}
	aggs := make(map[core.ID]*candidateAgg)
	for ck, score := range chunkScores {
		agg, ok := aggs[ck.candidate]
		if !ok {
			agg = &candidateAgg{best: score, bestChunk: ck.chunk, sum: score, count: 1}
			aggs[ck.candidate] = agg
			continue
		}
		agg.sum += score
		agg.count++
		if score > agg.best || (score == agg.best && ck.chunk < agg.bestChunk) {
			agg.best = score
			agg.bestChunk = ck.chunk
		}
	}

	hits := make([]*core.KeywordHit, 0, len(aggs))
	for candidateID, agg := range aggs {
		mean := agg.sum / float64(agg.count)
		hits = append(hits, &core.KeywordHit{
			CandidateId: candidateID,
			ChunkId:     agg.bestChunk,
			Score:       float32(bestChunkWeight*agg.best + meanChunkWeight*mean),
		})
	}

	slices.SortFunc(hits, func(a, b *core.KeywordHit) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if a.CandidateId < b.CandidateId {
			return -1
		}
		if a.CandidateId > b.CandidateId {
			return 1
		}
		return 0
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func readIndexStats(tx *badger.Txn) (*core.IndexStats, error) {
	item, err := tx.Get([]byte(keywordStatsKey))
	if err == badger.ErrKeyNotFound {
		return &core.IndexStats{}, nil
	}
	if err != nil {
		return nil, err
	}
	var stats *core.IndexStats
	err = item.Value(func(val []byte) error {
		var err error
		stats, err = storage.UnmarshalIndexStats(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func readPostingList(tx *badger.Txn, term string) (core.PostingList, error) {
	item, err := tx.Get(makeKeywordTermKey(term))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var postings core.PostingList
	err = item.Value(func(val []byte) error {
		var err error
		postings, err = storage.UnmarshalPostingList(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return postings, nil
}

func readTermList(tx *badger.Txn, candidateID core.ID) (core.TermList, error) {
	item, err := tx.Get(makeKeywordCandKey(candidateID))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var terms core.TermList
	err = item.Value(func(val []byte) error {
		var err error
		terms, err = storage.UnmarshalTermList(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func readChunkLengthList(tx *badger.Txn, candidateID core.ID) (core.ChunkLengthList, error) {
	item, err := tx.Get(makeKeywordLengthKey(candidateID))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lengths core.ChunkLengthList
	err = item.Value(func(val []byte) error {
		var err error
		lengths, err = storage.UnmarshalChunkLengthList(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lengths, nil
}
