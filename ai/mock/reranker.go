package mock

import (
	"context"
	"slices"
	"strings"

	"github.com/talentgrid/talentsearch/ai"
)

// MockReranker is a test double for ai.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RerankFunc is called by Rerank if set.
	// If nil, uses default deterministic behavior.
	RerankFunc func(ctx context.Context, query string, documents []string) ([]ai.RankedDocument, error)

	callCount int
}

// NewMockReranker creates a mock reranker with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank scores documents by word overlap with the query.
// The default behavior is deterministic: the relevance of a document is the
// fraction of query words it contains, with earlier documents winning ties.
func (m *MockReranker) Rerank(ctx context.Context, query string, documents []string) ([]ai.RankedDocument, error) {
	m.callCount++

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, query, documents)
	}

	queryWords := strings.Fields(strings.ToLower(query))
	ranked := make([]ai.RankedDocument, 0, len(documents))
	for i, doc := range documents {
		lower := strings.ToLower(doc)
		matched := 0
		for _, word := range queryWords {
			if strings.Contains(lower, word) {
				matched++
			}
		}
		relevance := 0.0
		if len(queryWords) > 0 {
			relevance = float64(matched) / float64(len(queryWords))
		}
		ranked = append(ranked, ai.RankedDocument{Index: i, Relevance: relevance})
	}

	slices.SortFunc(ranked, func(a, b ai.RankedDocument) int {
		if a.Relevance != b.Relevance {
			if a.Relevance > b.Relevance {
				return -1
			}
			return 1
		}
		return a.Index - b.Index
	})
	return ranked, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RerankFunc = nil
}
