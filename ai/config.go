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
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small"
	EmbeddingModel string

	// FallbackEmbeddingHosts are tried in order when the primary embedding
	// host fails. Each must serve the same model at the same width, or the
	// corpus would mix incompatible vectors.
	FallbackEmbeddingHosts []string

	// EmbeddingDimensions is the expected embedding vector width. Vectors of
	// a different width are never compared against each other, so the whole
	// corpus must be embedded at one width.
	// Default: 768
	EmbeddingDimensions int

	// RerankHost is the base URL for the cross-encoder rerank API.
	// Example: "https://api.cohere.com"
	RerankHost string

	// RerankModel is the cross-encoder model identifier.
	// Example: "rerank-v3.5"
	RerankModel string

	// RerankAPIKey authenticates against the rerank API. When empty the
	// re-ranking stage is skipped and retrieval order is returned as-is.
	RerankAPIKey string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithFallbackEmbeddingHosts sets the ordered list of embedding hosts tried
// when the primary host fails.
func WithFallbackEmbeddingHosts(hosts ...string) ConfigOption {
	return func(c *Config) {
		c.FallbackEmbeddingHosts = hosts
	}
}

// WithEmbeddingDimensions sets the expected embedding vector width.
func WithEmbeddingDimensions(dim int) ConfigOption {
	return func(c *Config) {
		c.EmbeddingDimensions = dim
	}
}

// WithRerankHost sets the rerank service host URL.
func WithRerankHost(host string) ConfigOption {
	return func(c *Config) {
		c.RerankHost = host
	}
}

// WithRerankModel sets the cross-encoder model identifier.
func WithRerankModel(model string) ConfigOption {
	return func(c *Config) {
		c.RerankModel = model
	}
}

// WithRerankAPIKey sets the rerank API key. An empty key disables re-ranking.
func WithRerankAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.RerankAPIKey = key
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible embedding service. Re-ranking stays disabled until an
// API key is supplied.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:       "http://localhost:11434/v1",
		EmbeddingModel:      "embeddinggemma",
		EmbeddingDimensions: 768,
		RerankHost:          "https://api.cohere.com",
		RerankModel:         "rerank-v3.5",
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithEmbeddingHost("http://localhost:11434/v1"),
//	    ai.WithRerankAPIKey(os.Getenv("COHERE_API_KEY")),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// RerankEnabled reports whether the re-ranking stage is configured.
func (c *Config) RerankEnabled() bool {
	return c.RerankAPIKey != ""
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the embedding host if missing,
// which is required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM).
// The rerank host only loses its trailing slash; the rerank client appends
// its own versioned path.
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	for i, host := range c.FallbackEmbeddingHosts {
		if host != "" && !strings.HasSuffix(host, "/v1") {
			c.FallbackEmbeddingHosts[i] = strings.TrimSuffix(host, "/") + "/v1"
		}
	}
	c.RerankHost = strings.TrimSuffix(c.RerankHost, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.EmbeddingDimensions <= 0 {
		return errors.New("ai config: EmbeddingDimensions must be positive")
	}
	if c.RerankEnabled() {
		if c.RerankHost == "" {
			return errors.New("ai config: RerankHost is required when re-ranking is enabled")
		}
		if c.RerankModel == "" {
			return errors.New("ai config: RerankModel is required when re-ranking is enabled")
		}
	}
	return nil
}
