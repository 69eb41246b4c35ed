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


package badger

import "github.com/talentgrid/talentsearch/storage"

// MemoryIndexes bundles in-memory storage components for testing.
type MemoryIndexes struct {
	Vector      *VectorIndex
	Keyword     *KeywordIndex
	Candidates  *CandidateRepository
	Checkpoints *CheckpointRepository
	Backend     *Backend
}

// NewMemoryIndexes creates in-memory storage components backed by a single
// in-memory BadgerDB. Caller must close the backend when done.
func NewMemoryIndexes() (*MemoryIndexes, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	return &MemoryIndexes{
		Vector:      NewVectorIndex(backend),
		Keyword:     NewKeywordIndex(backend, storage.DefaultLexicon()),
		Candidates:  NewCandidateRepository(backend),
		Checkpoints: NewCheckpointRepository(backend),
		Backend:     backend,
	}, nil
}

// Close closes the underlying backend.
func (m *MemoryIndexes) Close() error {
	return m.Backend.Close()
}
