package ingestion

import "errors"

var (
	// ErrVectorIndexRequired is returned when a vector index is not provided.
	ErrVectorIndexRequired = errors.New("vector index required")

	// ErrKeywordIndexRequired is returned when a keyword index is not provided.
	ErrKeywordIndexRequired = errors.New("keyword index required")

	// ErrCandidateRepositoryRequired is returned when a candidate repository is not provided.
	ErrCandidateRepositoryRequired = errors.New("candidate repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
