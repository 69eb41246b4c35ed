package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Candidate IDs come from the upstream document-structuring stage;
// chunk IDs are derived from content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID, which is what makes
// re-ingestion of an unchanged candidate idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ChunkKind identifies the semantic field a chunk was sliced from.
type ChunkKind int

const (
	// ChunkKindProfile covers the candidate's title and summary.
	ChunkKindProfile ChunkKind = iota + 1
	// ChunkKindSkills covers the skills list.
	ChunkKindSkills
	// ChunkKindExperience covers a single experience entry.
	ChunkKindExperience
	// ChunkKindEducation covers a single education entry.
	ChunkKindEducation
	// ChunkKindLanguages covers spoken languages.
	ChunkKindLanguages
	// ChunkKindCertifications covers certifications.
	ChunkKindCertifications
	// ChunkKindProjects covers a single project entry.
	ChunkKindProjects
)

// String returns the field name used in chunk metadata.
func (k ChunkKind) String() string {
	switch k {
	case ChunkKindProfile:
		return "profile"
	case ChunkKindSkills:
		return "skills"
	case ChunkKindExperience:
		return "experience"
	case ChunkKindEducation:
		return "education"
	case ChunkKindLanguages:
		return "languages"
	case ChunkKindCertifications:
		return "certifications"
	case ChunkKindProjects:
		return "projects"
	default:
		return "unknown"
	}
}

// ExperienceEntry is one employment record in a candidate document.
type ExperienceEntry struct {
	Role         string
	Organization string
	From         string
	To           string
	Description  string
}

// EducationEntry is one education record in a candidate document.
type EducationEntry struct {
	Degree      string
	Field       string
	Institution string
	From        string
	To          string
}

// LanguageSkill is one spoken language with a proficiency level.
type LanguageSkill struct {
	Name  string
	Level string
}

// CandidateDocument is one structured candidate profile, produced by the
// upstream extraction stage. It is immutable once stored except through
// explicit re-ingestion, which replaces all derived index entries wholesale.
type CandidateDocument struct {
	Id              ID
	Name            string
	Email           string
	Title           string
	Summary         string
	Location        string
	ExperienceYears int
	Skills          []string
	Experience      []ExperienceEntry
	Education       []EducationEntry
	Languages       []LanguageSkill
	Certifications  []string
	Projects        []string
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// LanguageNames returns the names of the candidate's spoken languages.
func (d *CandidateDocument) LanguageNames() []string {
	names := make([]string, 0, len(d.Languages))
	for _, lang := range d.Languages {
		if lang.Name != "" {
			names = append(names, lang.Name)
		}
	}
	return names
}

// Attributes derives the searchable scalar attributes shared by both indexes.
func (d *CandidateDocument) Attributes() CandidateAttributes {
	return CandidateAttributes{
		CandidateId:     d.Id,
		ExperienceYears: d.ExperienceYears,
		Languages:       d.LanguageNames(),
		Location:        d.Location,
	}
}

// Chunk is a named slice of a candidate document's content: the unit of
// embedding and indexing. Every chunk belongs to exactly one candidate.
type Chunk struct {
	Id          ID
	CandidateId ID
	Kind        ChunkKind
	Text        string
	Vector      []float32 // Populated by the embedding stage; empty when the capability failed for this chunk
}

// CandidateAttributes holds the scalar attributes both indexes use for
// filter predicates. Stored once per candidate, replaced on re-ingestion.
type CandidateAttributes struct {
	CandidateId     ID
	ExperienceYears int
	Languages       []string
	Location        string
}

// Posting is one entry in a keyword term's posting list.
type Posting struct {
	CandidateId ID
	ChunkId     ID
	TermFreq    uint32
}

// PostingList is a term's full posting list, stored as one index entry.
type PostingList []Posting

// TermList is the registry of terms a candidate's chunks contributed to,
// kept so re-ingestion can remove the candidate's postings atomically.
type TermList []string

// ChunkLength records the token count of one indexed chunk,
// used for BM25 length normalization.
type ChunkLength struct {
	ChunkId ID
	Length  uint32
}

// ChunkLengthList holds the chunk lengths for one candidate.
type ChunkLengthList []ChunkLength

// IndexStats tracks corpus-wide keyword index statistics.
type IndexStats struct {
	ChunkCount uint64
	TotalTerms uint64
}

// Checkpoint records reindex progress so an interrupted run can resume.
type Checkpoint struct {
	Name        string
	LastId      ID
	Processed   uint64
	CompletedAt time.Time
}

// VectorHit is a chunk match from vector similarity search.
type VectorHit struct {
	CandidateId ID
	ChunkId     ID
	Score       float32
}

// KeywordHit is a chunk match from keyword search. ChunkId identifies the
// best-scoring chunk for the candidate within the hit.
type KeywordHit struct {
	CandidateId ID
	ChunkId     ID
	Score       float32
}

// ScoredCandidate is a per-query scoring record for one candidate:
// the per-signal breakdown plus the evidentiary chunk. RerankScore is nil
// when the re-ranking pass was skipped or failed.
type ScoredCandidate struct {
	CandidateId     ID
	VectorScore     float64
	KeywordScore    float64
	BlendedScore    float64
	RerankScore     *float64
	EvidenceChunkId ID
}

// RetrievalResult is the outcome of one search request.
type RetrievalResult struct {
	Results         []*ScoredCandidate
	TotalConsidered int
	Reranked        bool
}
