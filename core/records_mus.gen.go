// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceAktIexpnOAb15gVrSSnP2AΞΞ = ord.NewSliceSer[EducationEntry](EducationEntryMUS)
	sliceD4Δxy4OZKIlQxsPHpi9oBQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceY6SXN40B8XcCNrwDUs804QΞΞ = ord.NewSliceSer[ChunkLength](ChunkLengthMUS)
	sliceYAukGo3YRze1Zlt52QLXHwΞΞ = ord.NewSliceSer[ExperienceEntry](ExperienceEntryMUS)
	slicebrxLAr85W99kΣuzKHkwZwwΞΞ = ord.NewSliceSer[LanguageSkill](LanguageSkillMUS)
	sliceqXRmpb8IEIdJ2f9IVCw5jAΞΞ = ord.NewSliceSer[Posting](PostingMUS)
	slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ChunkKindMUS = chunkKindMUS{}

type chunkKindMUS struct{}

func (s chunkKindMUS) Marshal(v ChunkKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s chunkKindMUS) Unmarshal(bs []byte) (v ChunkKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ChunkKind(tmp)
	return
}

func (s chunkKindMUS) Size(v ChunkKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s chunkKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ExperienceEntryMUS = experienceEntryMUS{}

type experienceEntryMUS struct{}

func (s experienceEntryMUS) Marshal(v ExperienceEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Role, bs)
	n += ord.String.Marshal(v.Organization, bs[n:])
	n += ord.String.Marshal(v.From, bs[n:])
	n += ord.String.Marshal(v.To, bs[n:])
	return n + ord.String.Marshal(v.Description, bs[n:])
}

func (s experienceEntryMUS) Unmarshal(bs []byte) (v ExperienceEntry, n int, err error) {
	v.Role, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Organization, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.From, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.To, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s experienceEntryMUS) Size(v ExperienceEntry) (size int) {
	size = ord.String.Size(v.Role)
	size += ord.String.Size(v.Organization)
	size += ord.String.Size(v.From)
	size += ord.String.Size(v.To)
	return size + ord.String.Size(v.Description)
}

func (s experienceEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var EducationEntryMUS = educationEntryMUS{}

type educationEntryMUS struct{}

func (s educationEntryMUS) Marshal(v EducationEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Degree, bs)
	n += ord.String.Marshal(v.Field, bs[n:])
	n += ord.String.Marshal(v.Institution, bs[n:])
	n += ord.String.Marshal(v.From, bs[n:])
	return n + ord.String.Marshal(v.To, bs[n:])
}

func (s educationEntryMUS) Unmarshal(bs []byte) (v EducationEntry, n int, err error) {
	v.Degree, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Field, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Institution, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.From, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.To, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s educationEntryMUS) Size(v EducationEntry) (size int) {
	size = ord.String.Size(v.Degree)
	size += ord.String.Size(v.Field)
	size += ord.String.Size(v.Institution)
	size += ord.String.Size(v.From)
	return size + ord.String.Size(v.To)
}

func (s educationEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var LanguageSkillMUS = languageSkillMUS{}

type languageSkillMUS struct{}

func (s languageSkillMUS) Marshal(v LanguageSkill, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	return n + ord.String.Marshal(v.Level, bs[n:])
}

func (s languageSkillMUS) Unmarshal(bs []byte) (v LanguageSkill, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Level, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s languageSkillMUS) Size(v LanguageSkill) (size int) {
	size = ord.String.Size(v.Name)
	return size + ord.String.Size(v.Level)
}

func (s languageSkillMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var CandidateDocumentMUS = candidateDocumentMUS{}

type candidateDocumentMUS struct{}

func (s candidateDocumentMUS) Marshal(v CandidateDocument, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += varint.Int.Marshal(v.ExperienceYears, bs[n:])
	n += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Marshal(v.Skills, bs[n:])
	n += sliceYAukGo3YRze1Zlt52QLXHwΞΞ.Marshal(v.Experience, bs[n:])
	n += sliceAktIexpnOAb15gVrSSnP2AΞΞ.Marshal(v.Education, bs[n:])
	n += slicebrxLAr85W99kΣuzKHkwZwwΞΞ.Marshal(v.Languages, bs[n:])
	n += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Marshal(v.Certifications, bs[n:])
	n += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Marshal(v.Projects, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateDocumentMUS) Unmarshal(bs []byte) (v CandidateDocument, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExperienceYears, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Experience, n1, err = sliceYAukGo3YRze1Zlt52QLXHwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = sliceAktIexpnOAb15gVrSSnP2AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Languages, n1, err = slicebrxLAr85W99kΣuzKHkwZwwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Certifications, n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Projects, n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateDocumentMUS) Size(v CandidateDocument) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.Location)
	size += varint.Int.Size(v.ExperienceYears)
	size += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Size(v.Skills)
	size += sliceYAukGo3YRze1Zlt52QLXHwΞΞ.Size(v.Experience)
	size += sliceAktIexpnOAb15gVrSSnP2AΞΞ.Size(v.Education)
	size += slicebrxLAr85W99kΣuzKHkwZwwΞΞ.Size(v.Languages)
	size += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Size(v.Certifications)
	size += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Size(v.Projects)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateDocumentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceYAukGo3YRze1Zlt52QLXHwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceAktIexpnOAb15gVrSSnP2AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicebrxLAr85W99kΣuzKHkwZwwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ChunkMUS = chunkMUS{}

type chunkMUS struct{}

func (s chunkMUS) Marshal(v Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.CandidateId, bs[n:])
	n += ChunkKindMUS.Marshal(v.Kind, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	return n + sliceD4Δxy4OZKIlQxsPHpi9oBQΞΞ.Marshal(v.Vector, bs[n:])
}

func (s chunkMUS) Unmarshal(bs []byte) (v Chunk, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.CandidateId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = ChunkKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceD4Δxy4OZKIlQxsPHpi9oBQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkMUS) Size(v Chunk) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.CandidateId)
	size += ChunkKindMUS.Size(v.Kind)
	size += ord.String.Size(v.Text)
	return size + sliceD4Δxy4OZKIlQxsPHpi9oBQΞΞ.Size(v.Vector)
}

func (s chunkMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ChunkKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceD4Δxy4OZKIlQxsPHpi9oBQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var CandidateAttributesMUS = candidateAttributesMUS{}

type candidateAttributesMUS struct{}

func (s candidateAttributesMUS) Marshal(v CandidateAttributes, bs []byte) (n int) {
	n = IDMUS.Marshal(v.CandidateId, bs)
	n += varint.Int.Marshal(v.ExperienceYears, bs[n:])
	n += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Marshal(v.Languages, bs[n:])
	return n + ord.String.Marshal(v.Location, bs[n:])
}

func (s candidateAttributesMUS) Unmarshal(bs []byte) (v CandidateAttributes, n int, err error) {
	v.CandidateId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ExperienceYears, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Languages, n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateAttributesMUS) Size(v CandidateAttributes) (size int) {
	size = IDMUS.Size(v.CandidateId)
	size += varint.Int.Size(v.ExperienceYears)
	size += slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Size(v.Languages)
	return size + ord.String.Size(v.Location)
}

func (s candidateAttributesMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var PostingMUS = postingMUS{}

type postingMUS struct{}

func (s postingMUS) Marshal(v Posting, bs []byte) (n int) {
	n = IDMUS.Marshal(v.CandidateId, bs)
	n += IDMUS.Marshal(v.ChunkId, bs[n:])
	return n + varint.Uint32.Marshal(v.TermFreq, bs[n:])
}

func (s postingMUS) Unmarshal(bs []byte) (v Posting, n int, err error) {
	v.CandidateId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ChunkId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TermFreq, n1, err = varint.Uint32.Unmarshal(bs[n:])
	n += n1
	return
}

func (s postingMUS) Size(v Posting) (size int) {
	size = IDMUS.Size(v.CandidateId)
	size += IDMUS.Size(v.ChunkId)
	return size + varint.Uint32.Size(v.TermFreq)
}

func (s postingMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint32.Skip(bs[n:])
	n += n1
	return
}

var PostingListMUS = postingListMUS{}

type postingListMUS struct{}

func (s postingListMUS) Marshal(v PostingList, bs []byte) (n int) {
	return sliceqXRmpb8IEIdJ2f9IVCw5jAΞΞ.Marshal([]Posting(v), bs)
}

func (s postingListMUS) Unmarshal(bs []byte) (v PostingList, n int, err error) {
	tmp, n, err := sliceqXRmpb8IEIdJ2f9IVCw5jAΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = PostingList(tmp)
	return
}

func (s postingListMUS) Size(v PostingList) (size int) {
	return sliceqXRmpb8IEIdJ2f9IVCw5jAΞΞ.Size([]Posting(v))
}

func (s postingListMUS) Skip(bs []byte) (n int, err error) {
	return sliceqXRmpb8IEIdJ2f9IVCw5jAΞΞ.Skip(bs)
}

var TermListMUS = termListMUS{}

type termListMUS struct{}

func (s termListMUS) Marshal(v TermList, bs []byte) (n int) {
	return slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Marshal([]string(v), bs)
}

func (s termListMUS) Unmarshal(bs []byte) (v TermList, n int, err error) {
	tmp, n, err := slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TermList(tmp)
	return
}

func (s termListMUS) Size(v TermList) (size int) {
	return slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Size([]string(v))
}

func (s termListMUS) Skip(bs []byte) (n int, err error) {
	return slicezkbaPCqcorfrt9Q8PoGΣiQΞΞ.Skip(bs)
}

var ChunkLengthMUS = chunkLengthMUS{}

type chunkLengthMUS struct{}

func (s chunkLengthMUS) Marshal(v ChunkLength, bs []byte) (n int) {
	n = IDMUS.Marshal(v.ChunkId, bs)
	return n + varint.Uint32.Marshal(v.Length, bs[n:])
}

func (s chunkLengthMUS) Unmarshal(bs []byte) (v ChunkLength, n int, err error) {
	v.ChunkId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Length, n1, err = varint.Uint32.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkLengthMUS) Size(v ChunkLength) (size int) {
	size = IDMUS.Size(v.ChunkId)
	return size + varint.Uint32.Size(v.Length)
}

func (s chunkLengthMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Uint32.Skip(bs[n:])
	n += n1
	return
}

var ChunkLengthListMUS = chunkLengthListMUS{}

type chunkLengthListMUS struct{}

func (s chunkLengthListMUS) Marshal(v ChunkLengthList, bs []byte) (n int) {
	return sliceY6SXN40B8XcCNrwDUs804QΞΞ.Marshal([]ChunkLength(v), bs)
}

func (s chunkLengthListMUS) Unmarshal(bs []byte) (v ChunkLengthList, n int, err error) {
	tmp, n, err := sliceY6SXN40B8XcCNrwDUs804QΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ChunkLengthList(tmp)
	return
}

func (s chunkLengthListMUS) Size(v ChunkLengthList) (size int) {
	return sliceY6SXN40B8XcCNrwDUs804QΞΞ.Size([]ChunkLength(v))
}

func (s chunkLengthListMUS) Skip(bs []byte) (n int, err error) {
	return sliceY6SXN40B8XcCNrwDUs804QΞΞ.Skip(bs)
}

var IndexStatsMUS = indexStatsMUS{}

type indexStatsMUS struct{}

func (s indexStatsMUS) Marshal(v IndexStats, bs []byte) (n int) {
	n = varint.Uint64.Marshal(v.ChunkCount, bs)
	return n + varint.Uint64.Marshal(v.TotalTerms, bs[n:])
}

func (s indexStatsMUS) Unmarshal(bs []byte) (v IndexStats, n int, err error) {
	v.ChunkCount, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.TotalTerms, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexStatsMUS) Size(v IndexStats) (size int) {
	size = varint.Uint64.Size(v.ChunkCount)
	return size + varint.Uint64.Size(v.TotalTerms)
}

func (s indexStatsMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	return
}

var CheckpointMUS = checkpointMUS{}

type checkpointMUS struct{}

func (s checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += IDMUS.Marshal(v.LastId, bs[n:])
	n += varint.Uint64.Marshal(v.Processed, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
}

func (s checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LastId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Processed, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s checkpointMUS) Size(v Checkpoint) (size int) {
	size = ord.String.Size(v.Name)
	size += IDMUS.Size(v.LastId)
	size += varint.Uint64.Size(v.Processed)
	return size + raw.TimeUnixMicro.Size(v.CompletedAt)
}

func (s checkpointMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Uint64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
