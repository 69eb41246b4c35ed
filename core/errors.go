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


package core

import "errors"

// Domain errors
var (
	// ErrEmptyDocument indicates a candidate document has no extractable text
	// in any semantic field and must not be indexed.
	ErrEmptyDocument = errors.New("document has no indexable content")

	// ErrEmbeddingUnavailable indicates the embedding capability failed.
	// During ingestion per-chunk failures are logged and sibling chunks
	// proceed; query-time and reindex failures surface wrapped with this
	// sentinel.
	ErrEmbeddingUnavailable = errors.New("embedding capability unavailable")

	// ErrInvalidFilter indicates a malformed filter set in a search request.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrRetrievalUnavailable indicates both the lexical and semantic search
	// signals failed for a request. This is the only total-failure case.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")

	// ErrInvalidCandidate indicates a CandidateDocument failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate document")

	// ErrMissingCandidateId indicates a candidate document without an ID.
	ErrMissingCandidateId = errors.New("candidate id is required")

	// ErrNegativeExperience indicates a negative years-of-experience value.
	ErrNegativeExperience = errors.New("experience years cannot be negative")
)
