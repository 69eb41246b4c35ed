package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

func intPtr(v int) *int { return &v }

func TestVectorUpsertAndQuery(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "python", Vector: []float32{1, 0, 0}},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "summary", Vector: []float32{0, 1, 0}},
	}
	if err := mem.Vector.Upsert(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	other := []*core.Chunk{
		{Id: 3, CandidateId: 20, Kind: core.ChunkKindSkills, Text: "golang", Vector: []float32{0.7, 0.7, 0}},
	}
	if err := mem.Vector.Upsert(ctx, 20, other); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 0, 0}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("Expected 3 hits, got %d", len(hits))
	}

	// Exact match first, then the diagonal vector, then the orthogonal one.
	if hits[0].CandidateId != 10 || hits[0].ChunkId != 1 {
		t.Fatalf("Expected candidate 10 chunk 1 first, got candidate %d chunk %d", hits[0].CandidateId, hits[0].ChunkId)
	}
	if hits[1].CandidateId != 20 || hits[1].ChunkId != 3 {
		t.Fatalf("Expected candidate 20 chunk 3 second, got candidate %d chunk %d", hits[1].CandidateId, hits[1].ChunkId)
	}
	if hits[0].Score <= hits[1].Score || hits[1].Score <= hits[2].Score {
		t.Fatalf("Expected descending scores, got %v %v %v", hits[0].Score, hits[1].Score, hits[2].Score)
	}
}

func TestVectorQueryLimit(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()
	for i := core.ID(1); i <= 5; i++ {
		chunk := &core.Chunk{Id: i, CandidateId: i, Kind: core.ChunkKindProfile, Text: "x", Vector: []float32{1, float32(i) * 0.1}}
		if err := mem.Vector.Upsert(ctx, i, []*core.Chunk{chunk}); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 0}, nil, 2)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
}

func TestVectorUpsertReplacesOldEntries(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	first := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "old", Vector: []float32{1, 0}},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "old", Vector: []float32{1, 0}},
	}
	if err := mem.Vector.Upsert(ctx, 10, first); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	second := []*core.Chunk{
		{Id: 3, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "new", Vector: []float32{0, 1}},
	}
	if err := mem.Vector.Upsert(ctx, 10, second); err != nil {
		t.Fatalf("Failed to re-upsert: %v", err)
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 1}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit after replacement, got %d", len(hits))
	}
	if hits[0].ChunkId != 3 {
		t.Fatalf("Expected chunk 3, got %d", hits[0].ChunkId)
	}

	if _, err := mem.Vector.GetChunk(ctx, 10, 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for replaced chunk, got %v", err)
	}
}

func TestVectorGetChunk(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunk := &core.Chunk{Id: 7, CandidateId: 3, Kind: core.ChunkKindExperience, Text: "led the platform team", Vector: []float32{0.5, 0.5}}
	if err := mem.Vector.Upsert(ctx, 3, []*core.Chunk{chunk}); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	got, err := mem.Vector.GetChunk(ctx, 3, 7)
	if err != nil {
		t.Fatalf("Failed to get chunk: %v", err)
	}
	if got.Text != "led the platform team" {
		t.Fatalf("Expected stored text, got '%s'", got.Text)
	}
	if got.Kind != core.ChunkKindExperience {
		t.Fatalf("Expected experience kind, got %v", got.Kind)
	}

	if _, err := mem.Vector.GetChunk(ctx, 3, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestVectorDelete(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunk := &core.Chunk{Id: 1, CandidateId: 5, Kind: core.ChunkKindProfile, Text: "x", Vector: []float32{1, 0}}
	if err := mem.Vector.Upsert(ctx, 5, []*core.Chunk{chunk}); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
	if err := mem.Vector.Delete(ctx, 5); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 0}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected no hits after delete, got %d", len(hits))
	}

	// Deleting an absent candidate is a no-op.
	if err := mem.Vector.Delete(ctx, 999); err != nil {
		t.Fatalf("Expected no-op delete, got %v", err)
	}
}

func TestVectorSkipsUnembeddedChunks(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "no vector", Vector: nil},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "embedded", Vector: []float32{1, 0}},
	}
	if err := mem.Vector.Upsert(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 0}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].ChunkId != 2 {
		t.Fatalf("Expected only the embedded chunk, got %v hits", len(hits))
	}

	// The unembedded chunk is still retrievable for evidence.
	if _, err := mem.Vector.GetChunk(ctx, 10, 1); err != nil {
		t.Fatalf("Expected unembedded chunk to be stored, got %v", err)
	}
}

func TestVectorQueryFilters(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	junior := &core.CandidateDocument{Id: 1, Name: "A", ExperienceYears: 2, Languages: []core.LanguageSkill{{Name: "English"}}, Location: "Berlin"}
	senior := &core.CandidateDocument{Id: 2, Name: "B", ExperienceYears: 9, Languages: []core.LanguageSkill{{Name: "German"}}, Location: "Munich"}
	for _, doc := range []*core.CandidateDocument{junior, senior} {
		if err := mem.Candidates.PutCandidate(ctx, doc); err != nil {
			t.Fatalf("Failed to put candidate: %v", err)
		}
	}

	for _, id := range []core.ID{1, 2} {
		chunk := &core.Chunk{Id: id, CandidateId: id, Kind: core.ChunkKindProfile, Text: "x", Vector: []float32{1, 0}}
		if err := mem.Vector.Upsert(ctx, id, []*core.Chunk{chunk}); err != nil {
			t.Fatalf("Failed to upsert: %v", err)
		}
	}

	hits, err := mem.Vector.Query(ctx, []float32{1, 0}, &storage.FilterSet{MinExperience: intPtr(5)}, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 2 {
		t.Fatalf("Expected only the senior candidate, got %d hits", len(hits))
	}

	hits, err = mem.Vector.Query(ctx, []float32{1, 0}, &storage.FilterSet{Location: "berl"}, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 1 {
		t.Fatalf("Expected only the Berlin candidate, got %d hits", len(hits))
	}
}

func TestVectorQueryInvalidK(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	if _, err := mem.Vector.Query(context.Background(), []float32{1, 0}, nil, 0); !errors.Is(err, storage.ErrInvalidQuery) {
		t.Fatalf("Expected ErrInvalidQuery, got %v", err)
	}
}

func TestVectorUpsertMixedWidthsRejected(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "profile", Vector: []float32{1, 0, 0}},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "skills", Vector: []float32{0, 1}},
	}
	if err := mem.Vector.Upsert(ctx, 10, chunks); !errors.Is(err, storage.ErrDimensionMismatch) {
		t.Fatalf("Expected ErrDimensionMismatch, got %v", err)
	}

	// Unembedded chunks carry no width and must not trip the check.
	chunks = []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "profile", Vector: []float32{1, 0, 0}},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "skills"},
	}
	if err := mem.Vector.Upsert(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to upsert: %v", err)
	}
}
