package ai

import "errors"

// ErrNoEmbedders is returned by a fallback chain constructed without any
// embedding providers.
var ErrNoEmbedders = errors.New("ai: no embedding providers configured")

// Provider is the standard AIProvider implementation: it aggregates
// independently constructed capabilities. The reranker may be nil when
// re-ranking is not configured.
type Provider struct {
	embedder Embedder
	reranker Reranker
}

var _ AIProvider = (*Provider)(nil)

// NewProvider aggregates an embedder and an optional reranker.
//
// Returns ai.AIProvider interface to enforce abstraction.
func NewProvider(embedder Embedder, reranker Reranker) AIProvider {
	return &Provider{
		embedder: embedder,
		reranker: reranker,
	}
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() Embedder {
	return p.embedder
}

// Reranker returns the re-ranking service, or nil when not configured.
func (p *Provider) Reranker() Reranker {
	return p.reranker
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	return nil
}
