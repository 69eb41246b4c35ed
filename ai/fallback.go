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


package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// FallbackEmbedder tries an ordered list of embedding providers and serves
// from the first one that succeeds. All providers in the chain must produce
// vectors of the same width, otherwise corpus and query vectors would not be
// comparable.
type FallbackEmbedder struct {
	chain  []Embedder
	logger *slog.Logger
}

var _ Embedder = (*FallbackEmbedder)(nil)

// NewFallbackEmbedder builds a fallback chain over the given providers,
// tried in order.
func NewFallbackEmbedder(chain ...Embedder) (*FallbackEmbedder, error) {
	if len(chain) == 0 {
		return nil, ErrNoEmbedders
	}
	return &FallbackEmbedder{
		chain:  chain,
		logger: slog.Default().With("component", "fallback-embedder"),
	}, nil
}

// EmbedText generates an embedding with the first provider that succeeds.
func (f *FallbackEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	var errs []error
	for i, embedder := range f.chain {
		vector, err := embedder.EmbedText(ctx, text)
		if err == nil {
			return vector, nil
		}
		f.logger.Warn("embedding provider failed", "position", i, "err", err)
		errs = append(errs, fmt.Errorf("provider %d: %w", i, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

// EmbedTexts generates batch embeddings with the first provider that succeeds.
func (f *FallbackEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	var errs []error
	for i, embedder := range f.chain {
		vectors, err := embedder.EmbedTexts(ctx, texts)
		if err == nil {
			return vectors, nil
		}
		f.logger.Warn("embedding provider failed", "position", i, "count", len(texts), "err", err)
		errs = append(errs, fmt.Errorf("provider %d: %w", i, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}
