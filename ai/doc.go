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


// Package ai provides abstractions for the AI capabilities used in
// TalentSearch.
//
// This package defines interfaces for text embeddings and cross-encoder
// re-ranking. The core domain and business logic depend on these
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - Reranker: Scores documents against a query with a cross-encoder
//   - AIProvider: Aggregates AI services for convenient initialization
//
// Both capabilities are fallible by contract. Embedding failures are
// reported per text so callers can index the surviving chunks; re-ranking
// failures must be recovered by the caller, which falls back to its own
// retrieval ordering. Re-ranking is optional: AIProvider.Reranker returns
// nil when it is not configured.
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/openai: Embeddings against OpenAI-compatible APIs
//   - ai/cohere: Cross-encoder re-ranking against the Cohere rerank API
//   - ai/mock: Deterministic test doubles without external dependencies
//
// # Constructor Return Type Pattern
//
// Production constructors (openai.NewEmbedder, cohere.NewReranker,
// ai.NewProvider) return INTERFACE types to enforce abstraction and prevent
// accidental coupling to concrete implementations.
//
//	embedder, err := openai.NewEmbedder(config)  // returns ai.Embedder
//
// Test utility constructors (mock.NewMockEmbedder, mock.NewMockReranker)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields and methods (CallCount, EmbedTextFunc, Reset).
//
//	mockEmbed := mock.NewMockEmbedder()  // returns *mock.MockEmbedder
//	mockEmbed.EmbedTextFunc = ...        // needs concrete type
//	count := mockEmbed.CallCount()       // test assertion
//
// # Usage Example
//
//	config := ai.NewConfig(
//	    ai.WithEmbeddingHost("http://localhost:11434/v1"),
//	    ai.WithRerankAPIKey(os.Getenv("COHERE_API_KEY")),
//	)
//	embedder, err := openai.NewEmbedder(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reranker, err := cohere.NewReranker(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := ai.NewProvider(embedder, reranker)
//	defer provider.Close()
package ai
