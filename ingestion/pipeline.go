package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// lockStripeCount is the number of striped candidate locks. Writes for one
// candidate always serialize; writes for different candidates rarely contend.
const lockStripeCount = 64

// Pipeline orchestrates candidate ingestion: chunking, embedding, and
// index writes. Embedding of a candidate's chunks fans out over a worker
// pool; failed chunks are indexed without vectors so keyword search still
// covers them.
type Pipeline struct {
	candidates storage.CandidateRepository
	vectors    storage.VectorIndex
	keywords   storage.KeywordIndex
	embedder   ai.Embedder
	pool       *ants.Pool
	locks      [lockStripeCount]sync.Mutex
	logger     *slog.Logger
}

// IngestReceipt summarizes one candidate ingestion.
type IngestReceipt struct {
	// Indexed reports whether the candidate reached both indexes.
	Indexed bool

	// ChunkCount is the number of chunks the document produced.
	ChunkCount int

	// EmbeddedCount is the number of chunks that received a vector.
	// Less than ChunkCount when the embedding capability failed for
	// some chunks.
	EmbeddedCount int
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent chunk embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	candidates storage.CandidateRepository,
	vectors storage.VectorIndex,
	keywords storage.KeywordIndex,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if candidates == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if vectors == nil {
		return nil, ErrVectorIndexRequired
	}
	if keywords == nil {
		return nil, ErrKeywordIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		candidates: candidates,
		vectors:    vectors,
		keywords:   keywords,
		embedder:   provider.Embedder(),
		pool:       pool,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// UpsertCandidate ingests or re-ingests one candidate document. All derived
// index entries for the candidate are replaced wholesale; a failed embedding
// leaves the affected chunk findable by keyword search only.
func (p *Pipeline) UpsertCandidate(ctx context.Context, doc *core.CandidateDocument) (*IngestReceipt, error) {
	chunks, err := BuildChunks(doc)
	if err != nil {
		return nil, err
	}

	lock := p.lockFor(doc.Id)
	lock.Lock()
	defer lock.Unlock()

	if err := p.candidates.PutCandidate(ctx, doc); err != nil {
		return nil, err
	}

	embedded := p.embedChunks(ctx, chunks)
	if embedded == 0 {
		p.logger.Warn("no chunks embedded, candidate reachable by keyword search only",
			"candidate", doc.Id, "chunks", len(chunks))
	}

	if err := p.vectors.Upsert(ctx, doc.Id, chunks); err != nil {
		return nil, err
	}
	if err := p.keywords.Index(ctx, doc.Id, chunks); err != nil {
		return nil, err
	}

	p.logger.Info("candidate ingested",
		"candidate", doc.Id, "chunks", len(chunks), "embedded", embedded)

	return &IngestReceipt{
		Indexed:       true,
		ChunkCount:    len(chunks),
		EmbeddedCount: embedded,
	}, nil
}

// embedChunks fans chunk embedding out over the worker pool and fills in
// each chunk's vector. Per-chunk failures are logged and skipped so sibling
// chunks proceed. Returns the number of chunks embedded.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []*core.Chunk) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	embedded := 0

	for _, chunk := range chunks {
		chunk := chunk
		wg.Add(1)
		task := func() {
			defer wg.Done()
			vector, err := p.embedder.EmbedText(ctx, chunk.Text)
			if err != nil {
				p.logger.Warn("chunk embedding failed",
					"candidate", chunk.CandidateId, "chunk", chunk.Id, "kind", chunk.Kind.String(), "err", err)
				return
			}
			if len(vector) == 0 {
				return
			}
			chunk.Vector = vector
			mu.Lock()
			embedded++
			mu.Unlock()
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool released or overloaded, degrade to inline execution.
			task()
		}
	}
	wg.Wait()
	return embedded
}

// DeleteCandidate removes the candidate document and all its index entries.
// Deleting an unknown candidate is a no-op.
func (p *Pipeline) DeleteCandidate(ctx context.Context, id core.ID) error {
	lock := p.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	return errors.Join(
		p.vectors.Delete(ctx, id),
		p.keywords.Delete(ctx, id),
		p.candidates.DeleteCandidate(ctx, id),
	)
}

func (p *Pipeline) lockFor(id core.ID) *sync.Mutex {
	return &p.locks[uint64(id)%lockStripeCount]
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
