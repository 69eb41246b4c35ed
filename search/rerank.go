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
	"log/slog"
	"time"

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
)

const (
	// rerankWindow caps how many blended candidates are sent to the
	// cross-encoder. Re-ranking is quadratic in attention cost on the
	// provider side, so only the head of the list is refined.
	rerankWindow = 20

	// rerankTimeout bounds a single re-ranking round trip. On expiry the
	// blended ordering is served unchanged.
	rerankTimeout = 4 * time.Second
)

// reranker refines the head of a blended result list with a cross-encoder.
// Every failure path falls back to the input ordering: re-ranking improves
// results when available and never blocks them when it is not.
type reranker struct {
	model  ai.Reranker
	engine *Engine
	logger *slog.Logger
}

func newReranker(model ai.Reranker, engine *Engine) *reranker {
	return &reranker{
		model:  model,
		engine: engine,
		logger: slog.Default().With("component", "reranker"),
	}
}

// rerank reorders up to rerankWindow candidates by cross-encoder relevance
// against the query, keeping the blended tail untouched. The boolean reports
// whether re-ranking was actually applied.
func (r *reranker) rerank(ctx context.Context, query string, candidates []*core.ScoredCandidate) ([]*core.ScoredCandidate, bool) {
	if r.model == nil || len(candidates) < 2 {
		return candidates, false
	}

	window := candidates
	if len(window) > rerankWindow {
		window = window[:rerankWindow]
	}

	documents := make([]string, len(window))
	for i, cand := range window {
		text, err := r.engine.EvidenceText(ctx, cand.CandidateId, cand.EvidenceChunkId)
		if err != nil {
			r.logger.Warn("loading evidence chunk for re-ranking failed",
				"candidate", cand.CandidateId, "err", err)
			return candidates, false
		}
		documents[i] = text
	}

	ctx, cancel := context.WithTimeout(ctx, rerankTimeout)
	defer cancel()

	ranked, err := r.model.Rerank(ctx, query, documents)
	if err != nil {
		r.logger.Warn("re-ranking failed, keeping blended order", "err", err)
		return candidates, false
	}
	if len(ranked) != len(window) {
		r.logger.Warn("re-ranker returned wrong result count, keeping blended order",
			"expected", len(window), "got", len(ranked))
		return candidates, false
	}

	// Validate the whole response before touching any candidate: a late
	// bad index must not leave earlier candidates with assigned scores.
	seen := make([]bool, len(window))
	for _, doc := range ranked {
		if doc.Index < 0 || doc.Index >= len(window) {
			r.logger.Warn("re-ranker returned out-of-range index, keeping blended order",
				"index", doc.Index)
			return candidates, false
		}
		if seen[doc.Index] {
			r.logger.Warn("re-ranker returned duplicate index, keeping blended order",
				"index", doc.Index)
			return candidates, false
		}
		seen[doc.Index] = true
	}

	reordered := make([]*core.ScoredCandidate, 0, len(candidates))
	for _, doc := range ranked {
		cand := window[doc.Index]
		score := doc.Relevance
		cand.RerankScore = &score
		reordered = append(reordered, cand)
	}
	reordered = append(reordered, candidates[len(window):]...)

	return reordered, true
}
