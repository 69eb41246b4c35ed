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


package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/talentgrid/talentsearch/ai"
)

// Reranker implements ai.Reranker against the Cohere v2 rerank endpoint.
type Reranker struct {
	host   string
	model  string
	apiKey string
	client *http.Client
	logger *slog.Logger
}

// newReranker is an internal constructor that returns the concrete type.
func newReranker(config *ai.Config) (*Reranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if !config.RerankEnabled() {
		return nil, fmt.Errorf("cohere: rerank API key not configured")
	}

	return &Reranker{
		host:   config.RerankHost,
		model:  config.RerankModel,
		apiKey: config.RerankAPIKey,
		client: &http.Client{},
		logger: slog.Default().With("component", "cohere-reranker"),
	}, nil
}

// NewReranker creates a reranker using the provided configuration.
// It fails when no rerank API key is configured; callers wanting optional
// re-ranking should check Config.RerankEnabled first.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	return newReranker(config)
}

type rerankRequest struct {
	Model     string   `json:"model"`
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	TopN      int      `json:"top_n"`
}

type rerankResponse struct {
	Results []struct {
		Index          int     `json:"index"`
		RelevanceScore float64 `json:"relevance_score"`
	} `json:"results"`
}

// Rerank scores each document's relevance to the query.
// Deadlines and cancellation are taken from ctx.
func (r *Reranker) Rerank(ctx context.Context, query string, documents []string) ([]ai.RankedDocument, error) {
	if len(documents) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(rerankRequest{
		Model:     r.model,
		Query:     query,
		Documents: documents,
		TopN:      len(documents),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.host+"/v2/rerank", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("rerank request failed", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		r.logger.Error("rerank request rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("cohere: rerank returned status %d: %s", resp.StatusCode, payload)
	}

	var parsed rerankResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("cohere: decoding rerank response: %w", err)
	}

	ranked := make([]ai.RankedDocument, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		if result.Index < 0 || result.Index >= len(documents) {
			return nil, fmt.Errorf("cohere: rerank result index %d out of range", result.Index)
		}
		ranked = append(ranked, ai.RankedDocument{
			Index:     result.Index,
			Relevance: result.RelevanceScore,
		})
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
