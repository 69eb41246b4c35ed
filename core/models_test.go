package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "skills chunk text",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "Role: Senior Engineer. Company: Acme. Description: built distributed retrieval systems over many years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestChunkKind_String(t *testing.T) {
	tests := []struct {
		kind ChunkKind
		want string
	}{
		{ChunkKindProfile, "profile"},
		{ChunkKindSkills, "skills"},
		{ChunkKindExperience, "experience"},
		{ChunkKindEducation, "education"},
		{ChunkKindLanguages, "languages"},
		{ChunkKindCertifications, "certifications"},
		{ChunkKindProjects, "projects"},
		{ChunkKind(0), "unknown"},
		{ChunkKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("ChunkKind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidateDocument_LanguageNames(t *testing.T) {
	doc := &CandidateDocument{
		Languages: []LanguageSkill{
			{Name: "English", Level: "C2"},
			{Name: "", Level: "A1"},
			{Name: "German", Level: "B2"},
		},
	}

	names := doc.LanguageNames()
	if len(names) != 2 {
		t.Fatalf("LanguageNames() returned %d names, want 2", len(names))
	}
	if names[0] != "English" || names[1] != "German" {
		t.Errorf("LanguageNames() = %v", names)
	}
}

func TestCandidateDocument_Attributes(t *testing.T) {
	doc := &CandidateDocument{
		Id:              42,
		Location:        "Berlin",
		ExperienceYears: 6,
		Languages:       []LanguageSkill{{Name: "English", Level: "C1"}},
	}

	attrs := doc.Attributes()
	if attrs.CandidateId != 42 {
		t.Errorf("Attributes().CandidateId = %d, want 42", attrs.CandidateId)
	}
	if attrs.ExperienceYears != 6 {
		t.Errorf("Attributes().ExperienceYears = %d, want 6", attrs.ExperienceYears)
	}
	if attrs.Location != "Berlin" {
		t.Errorf("Attributes().Location = %q, want Berlin", attrs.Location)
	}
	if len(attrs.Languages) != 1 || attrs.Languages[0] != "English" {
		t.Errorf("Attributes().Languages = %v", attrs.Languages)
	}
}
