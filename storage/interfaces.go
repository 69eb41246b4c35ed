package storage

import (
	"context"

	"github.com/talentgrid/talentsearch/core"
)

// VectorIndex is the persistent store of chunk embedding vectors.
// Implementations must be thread-safe and support concurrent reads during writes.
type VectorIndex interface {
	// Upsert replaces all vector entries for a candidate atomically.
	// Old entries for the candidate are removed before new entries commit;
	// no query may observe a mixed old/new state for one candidate.
	// Chunks without vectors are stored for evidence lookup but excluded
	// from similarity scoring.
	Upsert(ctx context.Context, candidateID core.ID, chunks []*core.Chunk) error

	// Query returns up to k chunk matches by cosine similarity descending,
	// restricted to candidates matching the filter predicates.
	// Ties are broken by candidate id ascending, then chunk id ascending.
	Query(ctx context.Context, vector []float32, filters *FilterSet, k int) ([]*core.VectorHit, error)

	// Delete removes all entries for a candidate.
	// A no-op, not an error, if none exist.
	Delete(ctx context.Context, candidateID core.ID) error

	// GetChunk retrieves one stored chunk, used for evidence assembly.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, candidateID, chunkID core.ID) (*core.Chunk, error)

	// Close closes the index and releases resources.
	Close() error
}

// KeywordIndex is the inverted lexical index over chunk text.
// Synonym expansion and skill boosting are driven by the Lexicon injected
// at construction time, not hardcoded in the scorer.
type KeywordIndex interface {
	// Index replaces all keyword entries for a candidate atomically.
	Index(ctx context.Context, candidateID core.ID, chunks []*core.Chunk) error

	// Query returns up to k candidate matches scored with BM25,
	// restricted to candidates matching the filter predicates.
	// Candidates matching no terms are excluded, not returned with score 0.
	// Ties are broken by candidate id ascending.
	Query(ctx context.Context, terms []string, filters *FilterSet, k int) ([]*core.KeywordHit, error)

	// Delete removes all entries for a candidate.
	// A no-op, not an error, if none exist.
	Delete(ctx context.Context, candidateID core.ID) error

	// Close closes the index and releases resources.
	Close() error
}

// CandidateRepository stores the source candidate documents so the corpus
// can be re-chunked and re-embedded after an embedding model change.
type CandidateRepository interface {
	// PutCandidate stores or replaces a candidate document.
	PutCandidate(ctx context.Context, doc *core.CandidateDocument) error

	// GetCandidate retrieves a candidate document by id.
	// Returns ErrNotFound if the document doesn't exist.
	GetCandidate(ctx context.Context, id core.ID) (*core.CandidateDocument, error)

	// DeleteCandidate removes a candidate document.
	// A no-op, not an error, if it doesn't exist.
	DeleteCandidate(ctx context.Context, id core.ID) error

	// ListCandidates returns up to limit candidate documents with ids
	// strictly greater than after, ordered by id ascending.
	// Used by the reindexer to walk the corpus in batches.
	ListCandidates(ctx context.Context, after core.ID, limit int) ([]*core.CandidateDocument, error)

	// CountCandidates returns the number of stored candidate documents.
	CountCandidates(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// CheckpointRepository persists reindex progress markers.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint by name.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint with the given name.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, name string) (*core.Checkpoint, error)

	// DeleteCheckpoint removes the checkpoint with the given name.
	// A no-op if it doesn't exist.
	DeleteCheckpoint(ctx context.Context, name string) error
}
