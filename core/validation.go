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

import (
	"fmt"
	"strings"
)

// ValidateCandidateDocument validates a CandidateDocument according to domain rules.
//
// Validation rules:
//   - Id must be set (candidate IDs are minted upstream)
//   - ExperienceYears must not be negative
//
// NOT validated:
//   - field completeness (the chunker decides which fields produce chunks;
//     a document with a single populated field is valid)
//   - timestamps (populated by storage)
func ValidateCandidateDocument(doc *CandidateDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidCandidate)
	}

	if doc.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrMissingCandidateId)
	}

	if doc.ExperienceYears < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrNegativeExperience)
	}

	return nil
}

// HasIndexableText reports whether any semantic field of the document
// contains text the chunker could extract.
func HasIndexableText(doc *CandidateDocument) bool {
	if doc == nil {
		return false
	}
	if strings.TrimSpace(doc.Title) != "" || strings.TrimSpace(doc.Summary) != "" {
		return true
	}
	for _, s := range doc.Skills {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	for _, e := range doc.Experience {
		if strings.TrimSpace(e.Role+e.Organization+e.Description) != "" {
			return true
		}
	}
	for _, e := range doc.Education {
		if strings.TrimSpace(e.Degree+e.Field+e.Institution) != "" {
			return true
		}
	}
	for _, l := range doc.Languages {
		if strings.TrimSpace(l.Name) != "" {
			return true
		}
	}
	for _, c := range doc.Certifications {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	for _, p := range doc.Projects {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
