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


package reindex

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid/talentsearch/ai/mock"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage/badger"
)

func testConfig(batchSize int) *Config {
	return &Config{
		BatchSize:      batchSize,
		ReportInterval: 1,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		CheckpointName: "test-reindex",
	}
}

func TestReindexer_RebuildsIndexes(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	seedCandidates(t, mem, 5)

	var out bytes.Buffer
	reindexer := NewReindexer(mem.Candidates, mem.Checkpoints, mem.Vector, mem.Keyword,
		mock.NewMockEmbedder(), testConfig(2), &out)

	require.NoError(t, reindexer.Run(context.Background()))

	// Every candidate is searchable through both signals afterwards.
	kwHits, err := mem.Keyword.Query(context.Background(), []string{"postgresql"}, nil, 10)
	require.NoError(t, err)
	assert.Len(t, kwHits, 5)

	embedder := mock.NewMockEmbedder()
	queryVector, err := embedder.EmbedText(context.Background(), "Job Title: Software Engineer.")
	require.NoError(t, err)
	vecHits, err := mem.Vector.Query(context.Background(), queryVector, nil, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, vecHits)

	// The checkpoint is cleared after a successful run.
	checkpoint, err := mem.Checkpoints.LoadCheckpoint(context.Background(), "test-reindex")
	require.NoError(t, err)
	assert.Nil(t, checkpoint)

	assert.Contains(t, out.String(), "Reindex complete")
}

func TestReindexer_EmptyCorpus(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	var out bytes.Buffer
	reindexer := NewReindexer(mem.Candidates, mem.Checkpoints, mem.Vector, mem.Keyword,
		mock.NewMockEmbedder(), testConfig(2), &out)

	require.NoError(t, reindexer.Run(context.Background()))
	assert.Contains(t, out.String(), "No candidates found")
}

func TestReindexer_ResumesFromCheckpoint(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	seedCandidates(t, mem, 5)

	// A previous run got through candidate 3 before stopping.
	require.NoError(t, mem.Checkpoints.SaveCheckpoint(context.Background(), &core.Checkpoint{
		Name:      "test-reindex",
		LastId:    3,
		Processed: 3,
	}))

	var out bytes.Buffer
	reindexer := NewReindexer(mem.Candidates, mem.Checkpoints, mem.Vector, mem.Keyword,
		mock.NewMockEmbedder(), testConfig(2), &out)

	require.NoError(t, reindexer.Run(context.Background()))

	// Only the candidates after the checkpoint were reindexed.
	kwHits, err := mem.Keyword.Query(context.Background(), []string{"postgresql"}, nil, 10)
	require.NoError(t, err)
	require.Len(t, kwHits, 2)
	assert.Equal(t, core.ID(4), kwHits[0].CandidateId)
	assert.Equal(t, core.ID(5), kwHits[1].CandidateId)

	assert.Contains(t, out.String(), "Resuming reindex after candidate 3")
}

func TestReindexer_FailureLeavesCheckpoint(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	seedCandidates(t, mem, 4)

	embedder := mock.NewMockEmbedder()
	calls := 0
	embedder.EmbedTextsFunc = func(_ context.Context, texts []string) ([][]float32, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("embedding host unreachable")
		}
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{1, 0, 0}
		}
		return vectors, nil
	}

	var out bytes.Buffer
	reindexer := NewReindexer(mem.Candidates, mem.Checkpoints, mem.Vector, mem.Keyword,
		embedder, testConfig(2), &out)

	err = reindexer.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmbeddingUnavailable)

	// The first batch's checkpoint survives for the next run to resume from.
	checkpoint, err := mem.Checkpoints.LoadCheckpoint(context.Background(), "test-reindex")
	require.NoError(t, err)
	require.NotNil(t, checkpoint)
	assert.Equal(t, core.ID(2), checkpoint.LastId)
	assert.Equal(t, uint64(2), checkpoint.Processed)
}

func TestBatchProcessor_SkipsEmptyDocuments(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	processor := NewBatchProcessor(mem.Vector, mem.Keyword, mock.NewMockEmbedder(), 2, time.Millisecond)

	docs := []*core.CandidateDocument{
		{Id: 1},
		{Id: 2, Skills: []string{"go"}},
	}
	require.NoError(t, processor.Process(context.Background(), docs))

	kwHits, err := mem.Keyword.Query(context.Background(), []string{"go"}, nil, 10)
	require.NoError(t, err)
	require.Len(t, kwHits, 1)
	assert.Equal(t, core.ID(2), kwHits[0].CandidateId)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	mem, err := badger.NewMemoryIndexes()
	require.NoError(t, err)
	t.Cleanup(func() { mem.Close() })

	processor := NewBatchProcessor(mem.Vector, mem.Keyword, mock.NewMockEmbedder(), 2, time.Millisecond)
	assert.NoError(t, processor.Process(context.Background(), nil))
}
