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


package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// supersetFactor is how many times the requested result size each signal
// fetches, so blending and truncation have enough candidates to work with.
const supersetFactor = 3

// filteredFetchFloor is the minimum per-signal fetch size when attribute
// filters are active, since filters can reject most of a small superset.
const filteredFetchFloor = 60

// verbatimBonus is added to a candidate's blended score when its evidence
// chunk contains every meaningful query word.
const verbatimBonus = 0.3

// Engine issues parallel vector and keyword queries, normalizes and blends
// their scores per the classifier's weight policy, and deduplicates results
// by candidate.
type Engine struct {
	vectors  storage.VectorIndex
	keywords storage.KeywordIndex
	embedder ai.Embedder
	lexicon  *storage.Lexicon
	logger   *slog.Logger
}

// NewEngine creates a hybrid search engine over the two indexes.
// A nil lexicon falls back to the built-in recruiting-domain tables.
func NewEngine(
	vectors storage.VectorIndex,
	keywords storage.KeywordIndex,
	embedder ai.Embedder,
	lexicon *storage.Lexicon,
) (*Engine, error) {
	if vectors == nil {
		return nil, ErrVectorIndexRequired
	}
	if keywords == nil {
		return nil, ErrKeywordIndexRequired
	}
	if embedder == nil {
		return nil, ErrAIProviderRequired
	}
	if lexicon == nil {
		lexicon = storage.DefaultLexicon()
	}
	return &Engine{
		vectors:  vectors,
		keywords: keywords,
		embedder: embedder,
		lexicon:  lexicon,
		logger:   slog.Default().With("component", "hybrid-engine"),
	}, nil
}

// Search runs both retrieval signals for the query and returns up to k
// blended candidates plus the total number of distinct candidates considered.
//
// A failure of one signal degrades that signal to an empty result set; only
// when both signals fail does Search return core.ErrRetrievalUnavailable.
func (e *Engine) Search(ctx context.Context, query *Query, k int, monitor SearchMonitor) ([]*core.ScoredCandidate, int, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if k <= 0 {
		return nil, 0, storage.ErrInvalidQuery
	}

	fetchK := supersetFactor * k
	if query.Filters != nil && !query.Filters.Empty() && fetchK < filteredFetchFloor {
		fetchK = filteredFetchFloor
	}

	var (
		vecHits []*core.VectorHit
		vecErr  error
		kwHits  []*core.KeywordHit
		kwErr   error
	)

	// The two signals run concurrently but independently: one failing must
	// not cancel the other, so errors are captured instead of returned.
	g := new(errgroup.Group)
	g.Go(func() error {
		vector, err := e.embedder.EmbedText(ctx, query.Text)
		if err != nil {
			vecErr = fmt.Errorf("%w: embedding query: %w", core.ErrEmbeddingUnavailable, err)
			return nil
		}
		vecHits, vecErr = e.vectors.Query(ctx, vector, query.Filters, fetchK)
		return nil
	})
	g.Go(func() error {
		terms := e.lexicon.Tokenize(query.Text)
		if len(terms) == 0 {
			return nil
		}
		kwHits, kwErr = e.keywords.Query(ctx, terms, query.Filters, fetchK)
		return nil
	})
	g.Wait()

	if vecErr != nil && kwErr != nil {
		return nil, 0, fmt.Errorf("%w: vector signal: %w; keyword signal: %w",
			core.ErrRetrievalUnavailable, vecErr, kwErr)
	}
	if vecErr != nil {
		e.logger.Warn("vector signal failed, degrading to keyword only", "err", vecErr)
		vecHits = nil
	}
	if kwErr != nil {
		e.logger.Warn("keyword signal failed, degrading to vector only", "err", kwErr)
		kwHits = nil
	}

	monitor.AfterVectorSearch(vecHits)
	monitor.AfterKeywordSearch(kwHits)

	// Normalize each signal's raw scores within its batch, then reduce the
	// chunk-level vector hits to one score per candidate. Both hit lists
	// arrive sorted by score descending with deterministic tie-breaks, so
	// the first occurrence of a candidate is its best chunk.
	vectorScores := make(map[core.ID]float64)
	vectorChunks := make(map[core.ID]core.ID)
	for i, norm := range minMaxNormalize(vectorHitScores(vecHits)) {
		hit := vecHits[i]
		if _, seen := vectorScores[hit.CandidateId]; seen {
			continue
		}
		vectorScores[hit.CandidateId] = norm
		vectorChunks[hit.CandidateId] = hit.ChunkId
	}

	keywordScores := make(map[core.ID]float64)
	keywordChunks := make(map[core.ID]core.ID)
	for i, norm := range minMaxNormalize(keywordHitScores(kwHits)) {
		hit := kwHits[i]
		keywordScores[hit.CandidateId] = norm
		keywordChunks[hit.CandidateId] = hit.ChunkId
	}

	weights := WeightsFor(query.Class)

	candidates := make(map[core.ID]bool, len(vectorScores)+len(keywordScores))
	for id := range vectorScores {
		candidates[id] = true
	}
	for id := range keywordScores {
		candidates[id] = true
	}

	blended := make([]*core.ScoredCandidate, 0, len(candidates))
	for id := range candidates {
		vScore := vectorScores[id]
		kScore := keywordScores[id]

		// Evidence is the chunk behind the larger weighted contribution.
		evidence, hasVecChunk := vectorChunks[id]
		if kwChunk, ok := keywordChunks[id]; ok {
			if !hasVecChunk || weights.Keyword*kScore > weights.Vector*vScore {
				evidence = kwChunk
			}
		}

		score := blend(weights, vScore, kScore)
		if e.evidenceMatchesVerbatim(ctx, id, evidence, query.Text) {
			score += verbatimBonus
		}

		blended = append(blended, &core.ScoredCandidate{
			CandidateId:     id,
			VectorScore:     vScore,
			KeywordScore:    kScore,
			BlendedScore:    score,
			EvidenceChunkId: evidence,
		})
	}

	slices.SortFunc(blended, func(a, b *core.ScoredCandidate) int {
		if a.BlendedScore != b.BlendedScore {
			if a.BlendedScore > b.BlendedScore {
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

	monitor.AfterBlend(blended)

	total := len(blended)
	if len(blended) > k {
		blended = blended[:k]
	}
	return blended, total, nil
}

// EvidenceText loads the stored text of a candidate's evidence chunk.
func (e *Engine) EvidenceText(ctx context.Context, candidateID, chunkID core.ID) (string, error) {
	chunk, err := e.vectors.GetChunk(ctx, candidateID, chunkID)
	if err != nil {
		return "", err
	}
	return chunk.Text, nil
}

func (e *Engine) evidenceMatchesVerbatim(ctx context.Context, candidateID, chunkID core.ID, query string) bool {
	text, err := e.EvidenceText(ctx, candidateID, chunkID)
	if err != nil {
		return false
	}
	return containsAllQueryWords(text, query, e.lexicon)
}

func vectorHitScores(hits []*core.VectorHit) []float32 {
	scores := make([]float32, len(hits))
	for i, hit := range hits {
		scores[i] = hit.Score
	}
	return scores
}

func keywordHitScores(hits []*core.KeywordHit) []float32 {
	scores := make([]float32, len(hits))
	for i, hit := range hits {
		scores[i] = hit.Score
	}
	return scores
}

// blend combines one candidate's normalized signal scores under the class
// weights. A candidate absent from a signal contributes zero on that side.
func blend(weights Weights, vectorScore, keywordScore float64) float64 {
	return weights.Vector*vectorScore + weights.Keyword*keywordScore
}

// minMaxNormalize scales scores to [0,1] within the batch. A batch whose
// scores are all equal, including a batch of one, normalizes to 1.0.
func minMaxNormalize(scores []float32) []float64 {
	if len(scores) == 0 {
		return nil
	}

	min, max := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	normalized := make([]float64, len(scores))
	if max == min {
		for i := range normalized {
			normalized[i] = 1.0
		}
		return normalized
	}

	span := float64(max) - float64(min)
	for i, s := range scores {
		normalized[i] = (float64(s) - float64(min)) / span
	}
	return normalized
}
