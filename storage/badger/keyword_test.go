package badger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

func TestKeywordIndexAndQuery(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	pythonChunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "python django flask"},
	}
	javaChunks := []*core.Chunk{
		{Id: 2, CandidateId: 20, Kind: core.ChunkKindSkills, Text: "java spring hibernate"},
	}
	if err := mem.Keyword.Index(ctx, 10, pythonChunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}
	if err := mem.Keyword.Index(ctx, 20, javaChunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}
	if hits[0].CandidateId != 10 || hits[0].ChunkId != 1 {
		t.Fatalf("Expected candidate 10 chunk 1, got candidate %d chunk %d", hits[0].CandidateId, hits[0].ChunkId)
	}
	if hits[0].Score <= 0 {
		t.Fatalf("Expected positive score, got %v", hits[0].Score)
	}
}

func TestKeywordTermFrequencyRanks(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	// Same chunk length, different term frequency for the query term.
	heavy := []*core.Chunk{
		{Id: 1, CandidateId: 1, Kind: core.ChunkKindSkills, Text: "python python django"},
	}
	light := []*core.Chunk{
		{Id: 2, CandidateId: 2, Kind: core.ChunkKindSkills, Text: "python django flask"},
	}
	if err := mem.Keyword.Index(ctx, 1, heavy); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}
	if err := mem.Keyword.Index(ctx, 2, light); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	if hits[0].CandidateId != 1 {
		t.Fatalf("Expected the higher term frequency first, got candidate %d", hits[0].CandidateId)
	}
	if hits[0].Score <= hits[1].Score {
		t.Fatalf("Expected descending scores, got %v then %v", hits[0].Score, hits[1].Score)
	}
}

func TestKeywordSynonymExpansion(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "kubernetes helm deployments"},
	}
	if err := mem.Keyword.Index(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	// The index only knows "kubernetes"; the query says "k8s".
	hits, err := mem.Keyword.Query(ctx, []string{"k8s"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 10 {
		t.Fatalf("Expected synonym match for candidate 10, got %d hits", len(hits))
	}
}

func TestKeywordMultiWordSynonymMatchesUnigrams(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "machine learning pipelines in production"},
	}
	if err := mem.Keyword.Index(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	// The chunk is indexed as the unigrams "machine" and "learning"; the
	// query alias "ml" must still reach it through the thesaurus.
	hits, err := mem.Keyword.Query(ctx, []string{"ml"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 10 {
		t.Fatalf("Expected multi-word synonym match for candidate 10, got %d hits", len(hits))
	}
}

func TestKeywordConcurrentIndexDistinctCandidates(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()
	const writers = 16

	// All writers touch the shared stats key; ingestion of distinct
	// candidates must still succeed and account every chunk.
	var wg sync.WaitGroup
	errCh := make(chan error, writers)
	for i := 1; i <= writers; i++ {
		id := core.ID(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			chunks := []*core.Chunk{
				{Id: id, CandidateId: id, Kind: core.ChunkKindSkills, Text: "python django postgresql"},
			}
			if err := mem.Keyword.Index(ctx, id, chunks); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("Concurrent index failed: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, nil, writers*2)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != writers {
		t.Fatalf("Expected %d hits, got %d", writers, len(hits))
	}
}

func TestKeywordNoMatchesExcluded(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "python django"},
	}
	if err := mem.Keyword.Index(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"haskell"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected no hits for an unindexed term, got %d", len(hits))
	}
}

func TestKeywordReindexReplacesOldTerms(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	first := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "cobol fortran"},
	}
	if err := mem.Keyword.Index(ctx, 10, first); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	second := []*core.Chunk{
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "rust tokio"},
	}
	if err := mem.Keyword.Index(ctx, 10, second); err != nil {
		t.Fatalf("Failed to re-index: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"cobol"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected old terms retracted, got %d hits", len(hits))
	}

	hits, err = mem.Keyword.Query(ctx, []string{"rust"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].ChunkId != 2 {
		t.Fatalf("Expected the new chunk to match, got %d hits", len(hits))
	}
}

func TestKeywordDelete(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "python django"},
	}
	if err := mem.Keyword.Index(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}
	if err := mem.Keyword.Delete(ctx, 10); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected no hits after delete, got %d", len(hits))
	}

	if err := mem.Keyword.Delete(ctx, 999); err != nil {
		t.Fatalf("Expected no-op delete, got %v", err)
	}
}

func TestKeywordBestChunkEvidence(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	// Chunk 2 mentions the term twice in the same length, so it must win
	// the evidence slot.
	chunks := []*core.Chunk{
		{Id: 1, CandidateId: 10, Kind: core.ChunkKindProfile, Text: "python mentioned once here"},
		{Id: 2, CandidateId: 10, Kind: core.ChunkKindSkills, Text: "python python mentioned here"},
	}
	if err := mem.Keyword.Index(ctx, 10, chunks); err != nil {
		t.Fatalf("Failed to index: %v", err)
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected one candidate, got %d", len(hits))
	}
	if hits[0].ChunkId != 2 {
		t.Fatalf("Expected the best-scoring chunk as evidence, got chunk %d", hits[0].ChunkId)
	}
}

func TestKeywordQueryFilters(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	ctx := context.Background()

	junior := &core.CandidateDocument{Id: 1, Name: "A", ExperienceYears: 2, Languages: []core.LanguageSkill{{Name: "English"}}}
	senior := &core.CandidateDocument{Id: 2, Name: "B", ExperienceYears: 9, Languages: []core.LanguageSkill{{Name: "German"}}}
	for _, doc := range []*core.CandidateDocument{junior, senior} {
		if err := mem.Candidates.PutCandidate(ctx, doc); err != nil {
			t.Fatalf("Failed to put candidate: %v", err)
		}
	}
	for _, id := range []core.ID{1, 2} {
		chunk := &core.Chunk{Id: id, CandidateId: id, Kind: core.ChunkKindSkills, Text: "python django"}
		if err := mem.Keyword.Index(ctx, id, []*core.Chunk{chunk}); err != nil {
			t.Fatalf("Failed to index: %v", err)
		}
	}

	hits, err := mem.Keyword.Query(ctx, []string{"python"}, &storage.FilterSet{MinExperience: intPtr(5)}, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 2 {
		t.Fatalf("Expected only the senior candidate, got %d hits", len(hits))
	}

	hits, err = mem.Keyword.Query(ctx, []string{"python"}, &storage.FilterSet{Languages: []string{"english"}}, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(hits) != 1 || hits[0].CandidateId != 1 {
		t.Fatalf("Expected only the English speaker, got %d hits", len(hits))
	}
}

func TestKeywordQueryEmptyIndex(t *testing.T) {
	mem, err := NewMemoryIndexes()
	if err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}
	defer mem.Close()

	hits, err := mem.Keyword.Query(context.Background(), []string{"python"}, nil, 10)
	if err != nil {
		t.Fatalf("Failed to query empty index: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Expected no hits, got %d", len(hits))
	}

	if _, err := mem.Keyword.Query(context.Background(), []string{"python"}, nil, 0); !errors.Is(err, storage.ErrInvalidQuery) {
		t.Fatalf("Expected ErrInvalidQuery, got %v", err)
	}
}
