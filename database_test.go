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


package talentsearch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid/talentsearch/ai/mock"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/search"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test_db"),
		WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		db := newTestDatabase(t)

		assert.NotNil(t, db.VectorIndex())
		assert.NotNil(t, db.KeywordIndex())
		assert.NotNil(t, db.CandidateRepository())
		assert.NotNil(t, db.CheckpointRepository())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db := newTestDatabase(t)

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create retriever", func(t *testing.T) {
		retriever, err := db.NewRetriever()
		require.NoError(t, err)
		require.NotNil(t, retriever)
	})

	t.Run("can create reindexer", func(t *testing.T) {
		var out bytes.Buffer
		reindexer := db.NewReindexer(nil, &out)
		require.NotNil(t, reindexer)
	})
}

func TestDatabase_IngestThenSearch(t *testing.T) {
	db := newTestDatabase(t)

	pipeline, err := db.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	docs := []*core.CandidateDocument{
		{
			Id:              1,
			Name:            "Ada Smith",
			Title:           "Backend Engineer",
			Summary:         "Builds APIs in Go and operates PostgreSQL clusters.",
			ExperienceYears: 6,
			Skills:          []string{"go", "postgresql", "kubernetes"},
		},
		{
			Id:              2,
			Name:            "Ben Jones",
			Title:           "Frontend Developer",
			Summary:         "Crafts interfaces with React and TypeScript.",
			ExperienceYears: 3,
			Skills:          []string{"react", "typescript", "css"},
		},
	}
	for _, doc := range docs {
		receipt, err := pipeline.UpsertCandidate(ctx, doc)
		require.NoError(t, err)
		assert.True(t, receipt.Indexed)
	}

	retriever, err := db.NewRetriever()
	require.NoError(t, err)

	result, err := retriever.Search(ctx, &search.SearchRequest{Query: "postgresql"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Results)
	assert.Equal(t, core.ID(1), result.Results[0].CandidateId)
}
