package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	assert.Equal(t, 768, cfg.EmbeddingDimensions)
	assert.Equal(t, "https://api.cohere.com", cfg.RerankHost)
	assert.Equal(t, "rerank-v3.5", cfg.RerankModel)
	assert.False(t, cfg.RerankEnabled())
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, 768, cfg.EmbeddingDimensions)
	})

	t.Run("with custom embedding settings", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithEmbeddingModel("text-embedding-3-small"),
			WithEmbeddingDimensions(1536),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, 1536, cfg.EmbeddingDimensions)
	})

	t.Run("with rerank settings", func(t *testing.T) {
		cfg := NewConfig(
			WithRerankHost("https://rerank.example.com"),
			WithRerankModel("rerank-english-v3.0"),
			WithRerankAPIKey("secret"),
		)

		assert.Equal(t, "https://rerank.example.com", cfg.RerankHost)
		assert.Equal(t, "rerank-english-v3.0", cfg.RerankModel)
		assert.True(t, cfg.RerankEnabled())
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix to embedding host", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before adding v1", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves v1 suffix alone", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash from rerank host", func(t *testing.T) {
		cfg := NewConfig(WithRerankHost("https://api.cohere.com/"))
		cfg.Normalize()
		assert.Equal(t, "https://api.cohere.com", cfg.RerankHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid default config", func(t *testing.T) {
		require.NoError(t, NewConfig().Validate())
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := NewConfig()
		cfg.EmbeddingHost = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := NewConfig()
		cfg.EmbeddingModel = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive dimensions", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingDimensions(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("rerank enabled without model", func(t *testing.T) {
		cfg := NewConfig(WithRerankAPIKey("secret"), WithRerankModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("rerank disabled ignores rerank fields", func(t *testing.T) {
		cfg := NewConfig(WithRerankHost(""), WithRerankModel(""))
		require.NoError(t, cfg.Validate())
	})
}
