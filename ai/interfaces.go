package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Reranker scores documents against a query with a cross-encoder model.
// Implementations must be thread-safe for concurrent use.
type Reranker interface {
	// Rerank scores each document's relevance to the query.
	// The returned slice references documents by their input index and is
	// ordered by relevance descending. Callers must treat any error as a
	// signal to fall back to their own ordering.
	Rerank(ctx context.Context, query string, documents []string) ([]RankedDocument, error)
}

// RankedDocument is one cross-encoder relevance judgment.
type RankedDocument struct {
	// Index is the document's position in the Rerank input slice.
	Index int

	// Relevance is the cross-encoder relevance score, higher is better.
	Relevance float64
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and Reranker
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Reranker returns the cross-encoder re-ranking service, or nil when
	// re-ranking is not configured. Callers must handle nil by skipping
	// the re-ranking stage.
	Reranker() Reranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
