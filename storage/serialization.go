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


package storage

import (
	"github.com/talentgrid/talentsearch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalCandidateDocument serializes a CandidateDocument to bytes.
func MarshalCandidateDocument(doc *core.CandidateDocument) []byte {
	buf := make([]byte, core.CandidateDocumentMUS.Size(*doc))
	core.CandidateDocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalCandidateDocument deserializes a CandidateDocument from bytes.
func UnmarshalCandidateDocument(data []byte) (*core.CandidateDocument, error) {
	doc, _, err := core.CandidateDocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, core.ChunkMUS.Size(*chunk))
	core.ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := core.ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalCandidateAttributes serializes CandidateAttributes to bytes.
func MarshalCandidateAttributes(attrs *core.CandidateAttributes) []byte {
	buf := make([]byte, core.CandidateAttributesMUS.Size(*attrs))
	core.CandidateAttributesMUS.Marshal(*attrs, buf)
	return buf
}

// UnmarshalCandidateAttributes deserializes CandidateAttributes from bytes.
func UnmarshalCandidateAttributes(data []byte) (*core.CandidateAttributes, error) {
	attrs, _, err := core.CandidateAttributesMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &attrs, nil
}

// MarshalPostingList serializes a posting list to bytes.
func MarshalPostingList(postings core.PostingList) []byte {
	buf := make([]byte, core.PostingListMUS.Size(postings))
	core.PostingListMUS.Marshal(postings, buf)
	return buf
}

// UnmarshalPostingList deserializes a posting list from bytes.
func UnmarshalPostingList(data []byte) (core.PostingList, error) {
	postings, _, err := core.PostingListMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return postings, nil
}

// MarshalTermList serializes a candidate's term registry to bytes.
func MarshalTermList(terms core.TermList) []byte {
	buf := make([]byte, core.TermListMUS.Size(terms))
	core.TermListMUS.Marshal(terms, buf)
	return buf
}

// UnmarshalTermList deserializes a candidate's term registry from bytes.
func UnmarshalTermList(data []byte) (core.TermList, error) {
	terms, _, err := core.TermListMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// MarshalChunkLengthList serializes a candidate's chunk lengths to bytes.
func MarshalChunkLengthList(lengths core.ChunkLengthList) []byte {
	buf := make([]byte, core.ChunkLengthListMUS.Size(lengths))
	core.ChunkLengthListMUS.Marshal(lengths, buf)
	return buf
}

// UnmarshalChunkLengthList deserializes a candidate's chunk lengths from bytes.
func UnmarshalChunkLengthList(data []byte) (core.ChunkLengthList, error) {
	lengths, _, err := core.ChunkLengthListMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return lengths, nil
}

// MarshalIndexStats serializes keyword index statistics to bytes.
func MarshalIndexStats(stats *core.IndexStats) []byte {
	buf := make([]byte, core.IndexStatsMUS.Size(*stats))
	core.IndexStatsMUS.Marshal(*stats, buf)
	return buf
}

// UnmarshalIndexStats deserializes keyword index statistics from bytes.
func UnmarshalIndexStats(data []byte) (*core.IndexStats, error) {
	stats, _, err := core.IndexStatsMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MarshalCheckpoint serializes a Checkpoint to bytes.
func MarshalCheckpoint(checkpoint *core.Checkpoint) []byte {
	buf := make([]byte, core.CheckpointMUS.Size(*checkpoint))
	core.CheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalCheckpoint deserializes a Checkpoint from bytes.
func UnmarshalCheckpoint(data []byte) (*core.Checkpoint, error) {
	checkpoint, _, err := core.CheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
