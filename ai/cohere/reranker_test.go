package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/talentsearch/ai"
)

func testConfig(host string) *ai.Config {
	return ai.NewConfig(
		ai.WithRerankHost(host),
		ai.WithRerankAPIKey("test-key"),
	)
}

func TestRerank(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"index": 1, "relevance_score": 0.92},
				{"index": 0, "relevance_score": 0.31},
			},
		})
	}))
	defer server.Close()

	reranker, err := NewReranker(testConfig(server.URL))
	require.NoError(t, err)

	ranked, err := reranker.Rerank(context.Background(), "golang engineer", []string{"doc a", "doc b"})
	require.NoError(t, err)

	assert.Equal(t, "/v2/rerank", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "rerank-v3.5", gotBody["model"])
	assert.Equal(t, "golang engineer", gotBody["query"])

	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Index)
	assert.InDelta(t, 0.92, ranked[0].Relevance, 1e-9)
	assert.Equal(t, 0, ranked[1].Index)
}

func TestRerankEmptyDocuments(t *testing.T) {
	reranker, err := NewReranker(testConfig("http://localhost:1"))
	require.NoError(t, err)

	ranked, err := reranker.Rerank(context.Background(), "query", nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRerankServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	reranker, err := NewReranker(testConfig(server.URL))
	require.NoError(t, err)

	_, err = reranker.Rerank(context.Background(), "query", []string{"doc"})
	assert.Error(t, err)
}

func TestRerankOutOfRangeIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"index": 5, "relevance_score": 0.9}},
		})
	}))
	defer server.Close()

	reranker, err := NewReranker(testConfig(server.URL))
	require.NoError(t, err)

	_, err = reranker.Rerank(context.Background(), "query", []string{"doc"})
	assert.Error(t, err)
}

func TestNewRerankerRequiresKey(t *testing.T) {
	_, err := NewReranker(ai.NewConfig())
	assert.Error(t, err)
}
