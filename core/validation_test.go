package core

import (
	"errors"
	"testing"
)

func TestValidateCandidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *CandidateDocument
		wantErr error
	}{
		{
			name: "valid document",
			doc: &CandidateDocument{
				Id:              1,
				Name:            "Jane Doe",
				Skills:          []string{"Go", "Python"},
				ExperienceYears: 4,
			},
			wantErr: nil,
		},
		{
			name: "valid document with single populated field",
			doc: &CandidateDocument{
				Id:     2,
				Skills: []string{"React"},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidCandidate,
		},
		{
			name:    "missing id",
			doc:     &CandidateDocument{Name: "Jane Doe"},
			wantErr: ErrMissingCandidateId,
		},
		{
			name: "negative experience",
			doc: &CandidateDocument{
				Id:              3,
				ExperienceYears: -1,
			},
			wantErr: ErrNegativeExperience,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCandidateDocument() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCandidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasIndexableText(t *testing.T) {
	tests := []struct {
		name string
		doc  *CandidateDocument
		want bool
	}{
		{
			name: "nil document",
			doc:  nil,
			want: false,
		},
		{
			name: "fully empty document",
			doc:  &CandidateDocument{Id: 1, Name: "Ghost"},
			want: false,
		},
		{
			name: "whitespace only",
			doc: &CandidateDocument{
				Id:      1,
				Summary: "   ",
				Skills:  []string{" ", ""},
			},
			want: false,
		},
		{
			name: "title only",
			doc:  &CandidateDocument{Id: 1, Title: "Backend Developer"},
			want: true,
		},
		{
			name: "skills only",
			doc:  &CandidateDocument{Id: 1, Skills: []string{"Kubernetes"}},
			want: true,
		},
		{
			name: "experience only",
			doc: &CandidateDocument{
				Id:         1,
				Experience: []ExperienceEntry{{Role: "Engineer"}},
			},
			want: true,
		},
		{
			name: "education only",
			doc: &CandidateDocument{
				Id:        1,
				Education: []EducationEntry{{Institution: "TU Wien"}},
			},
			want: true,
		},
		{
			name: "languages only",
			doc: &CandidateDocument{
				Id:        1,
				Languages: []LanguageSkill{{Name: "French"}},
			},
			want: true,
		},
		{
			name: "certifications only",
			doc:  &CandidateDocument{Id: 1, Certifications: []string{"CKA"}},
			want: true,
		},
		{
			name: "projects only",
			doc:  &CandidateDocument{Id: 1, Projects: []string{"search engine"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasIndexableText(tt.doc); got != tt.want {
				t.Errorf("HasIndexableText() = %v, want %v", got, tt.want)
			}
		})
	}
}
