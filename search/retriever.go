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

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// defaultTopK is the result size used when a request does not specify one.
const defaultTopK = 10

// SearchRequest describes one retrieval call against the candidate pool.
type SearchRequest struct {
	// Query is the free-text search input.
	Query string
	// TopK is the maximum number of candidates to return. Zero or negative
	// values default to 10.
	TopK int
	// Filters restricts results by structured candidate attributes.
	Filters UIFilters
}

// Retriever is the retrieval facade: it classifies the query, resolves
// filters, runs the hybrid engine, re-ranks the head of the results, and
// truncates to the requested size.
type Retriever struct {
	engine     *Engine
	classifier *Classifier
	reranker   *reranker
	logger     *slog.Logger
}

// NewRetriever wires the full retrieval path over the given indexes and AI
// provider. The provider's re-ranker is optional; without one every result
// is served in blended order.
func NewRetriever(
	vectors storage.VectorIndex,
	keywords storage.KeywordIndex,
	provider ai.AIProvider,
	lexicon *storage.Lexicon,
) (*Retriever, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if lexicon == nil {
		lexicon = storage.DefaultLexicon()
	}
	engine, err := NewEngine(vectors, keywords, provider.Embedder(), lexicon)
	if err != nil {
		return nil, err
	}
	return &Retriever{
		engine:     engine,
		classifier: NewClassifier(lexicon),
		reranker:   newReranker(provider.Reranker(), engine),
		logger:     slog.Default().With("component", "retriever"),
	}, nil
}

// Search retrieves the best-matching candidates for the request.
func (r *Retriever) Search(ctx context.Context, request *SearchRequest) (*core.RetrievalResult, error) {
	return r.SearchWithMonitor(ctx, request, nil)
}

// SearchWithMonitor is Search with stage-by-stage observation hooks, used by
// tests and diagnostic tooling.
func (r *Retriever) SearchWithMonitor(ctx context.Context, request *SearchRequest, monitor SearchMonitor) (*core.RetrievalResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(request.Query)

	filters, err := ParseFilters(request.Filters)
	if err != nil {
		return nil, err
	}

	topK := request.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	class := r.classifier.Classify(request.Query)
	monitor.AfterClassification(class, WeightsFor(class))

	query := &Query{
		Text:    request.Query,
		Class:   class,
		Filters: filters,
	}

	// The engine fetches at least a full re-ranking window so the
	// cross-encoder can promote candidates from beyond the final page.
	fetchK := topK
	if fetchK < rerankWindow {
		fetchK = rerankWindow
	}

	candidates, total, err := r.engine.Search(ctx, query, fetchK, monitor)
	if err != nil {
		return nil, err
	}

	candidates, reranked := r.reranker.rerank(ctx, request.Query, candidates)
	monitor.AfterRerank(candidates, reranked)

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	result := &core.RetrievalResult{
		Results:         candidates,
		TotalConsidered: total,
		Reranked:        reranked,
	}
	monitor.Finish(result)

	r.logger.Debug("search complete",
		"class", class.String(),
		"considered", total,
		"returned", len(result.Results),
		"reranked", reranked)

	return result, nil
}
