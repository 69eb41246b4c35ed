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
	"io"
	"log/slog"

	"github.com/talentgrid/talentsearch/ai"
	"github.com/talentgrid/talentsearch/ai/cohere"
	"github.com/talentgrid/talentsearch/ai/openai"
	"github.com/talentgrid/talentsearch/ingestion"
	"github.com/talentgrid/talentsearch/reindex"
	"github.com/talentgrid/talentsearch/search"
	"github.com/talentgrid/talentsearch/storage"
	"github.com/talentgrid/talentsearch/storage/badger"
)

// Database bundles the storage backend, both retrieval indexes, and the AI
// provider behind one handle. It is the entry point for embedding the
// engine into a host application.
type Database struct {
	backend        *badger.Backend
	vectorIndex    storage.VectorIndex
	keywordIndex   storage.KeywordIndex
	candidateRepo  storage.CandidateRepository
	checkpointRepo storage.CheckpointRepository
	provider       ai.AIProvider
	lexicon        *storage.Lexicon
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	lexicon  *storage.Lexicon
}

// WithAIConfig sets the AI capability configuration used to build the
// default provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the config-driven
// construction. Used by tests and by hosts with custom capability wiring.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithLexicon overrides the built-in recruiting-domain vocabulary tables.
func WithLexicon(lexicon *storage.Lexicon) DatabaseOption {
	return func(o *databaseOptions) {
		o.lexicon = lexicon
	}
}

// NewDatabase opens (or creates) a candidate search database at filePath.
// An empty filePath opens a transient in-memory database.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
		lexicon:  storage.DefaultLexicon(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = newProviderFromConfig(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:        backend,
		vectorIndex:    badger.NewVectorIndex(backend),
		keywordIndex:   badger.NewKeywordIndex(backend, options.lexicon),
		candidateRepo:  badger.NewCandidateRepository(backend),
		checkpointRepo: badger.NewCheckpointRepository(backend),
		provider:       provider,
		lexicon:        options.lexicon,
		logger:         slog.Default(),
	}, nil
}

// newProviderFromConfig builds the production provider: an OpenAI-compatible
// embedder (with fallback hosts when configured), plus a Cohere re-ranker
// when an API key is configured.
func newProviderFromConfig(config *ai.Config) (ai.AIProvider, error) {
	embedder, err := openai.NewEmbedder(config)
	if err != nil {
		return nil, err
	}

	if len(config.FallbackEmbeddingHosts) > 0 {
		chain := []ai.Embedder{embedder}
		for _, host := range config.FallbackEmbeddingHosts {
			hostConfig := *config
			hostConfig.EmbeddingHost = host
			fallback, err := openai.NewEmbedder(&hostConfig)
			if err != nil {
				return nil, err
			}
			chain = append(chain, fallback)
		}
		embedder, err = ai.NewFallbackEmbedder(chain...)
		if err != nil {
			return nil, err
		}
	}

	var reranker ai.Reranker
	if config.RerankEnabled() {
		reranker, err = cohere.NewReranker(config)
		if err != nil {
			return nil, err
		}
	}

	return ai.NewProvider(embedder, reranker), nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.vectorIndex.Close(); err != nil {
		db.logger.Error("error closing vector index", "err", err)
		return err
	}
	if err := db.keywordIndex.Close(); err != nil {
		db.logger.Error("error closing keyword index", "err", err)
		return err
	}
	if err := db.candidateRepo.Close(); err != nil {
		db.logger.Error("error closing candidate repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) VectorIndex() storage.VectorIndex {
	return db.vectorIndex
}

func (db *Database) KeywordIndex() storage.KeywordIndex {
	return db.keywordIndex
}

func (db *Database) CandidateRepository() storage.CandidateRepository {
	return db.candidateRepo
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

// NewIngestionPipeline creates a pipeline that chunks, embeds, and indexes
// candidate documents into this database.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.candidateRepo, db.vectorIndex, db.keywordIndex, db.provider, opts...)
}

// NewRetriever creates the hybrid search facade over this database.
func (db *Database) NewRetriever() (*search.Retriever, error) {
	return search.NewRetriever(db.vectorIndex, db.keywordIndex, db.provider, db.lexicon)
}

// NewReindexer creates a reindexer that rebuilds both indexes from the
// stored candidate documents, reporting progress to the given writer.
func (db *Database) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(db.candidateRepo, db.checkpointRepo, db.vectorIndex, db.keywordIndex,
		db.provider.Embedder(), config, progress)
}
