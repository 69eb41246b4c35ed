package storage

import (
	"strings"

	"github.com/talentgrid/talentsearch/core"
)

// FilterSet holds the metadata predicates applied by both indexes.
// Nil pointer fields and empty slices impose no constraint.
type FilterSet struct {
	// MinExperience is the inclusive lower bound on years of experience.
	MinExperience *int

	// MaxExperience is the inclusive upper bound on years of experience.
	MaxExperience *int

	// Languages requires the candidate to speak at least one of the
	// listed languages (case-insensitive).
	Languages []string

	// Location requires a case-insensitive substring match on the
	// candidate's location.
	Location string
}

// Empty reports whether the filter set imposes no constraint.
func (f *FilterSet) Empty() bool {
	if f == nil {
		return true
	}
	return f.MinExperience == nil && f.MaxExperience == nil &&
		len(f.Languages) == 0 && f.Location == ""
}

// Matches reports whether the candidate attributes satisfy every predicate.
func (f *FilterSet) Matches(attrs *core.CandidateAttributes) bool {
	if f.Empty() {
		return true
	}
	if attrs == nil {
		return false
	}

	if f.MinExperience != nil && attrs.ExperienceYears < *f.MinExperience {
		return false
	}
	if f.MaxExperience != nil && attrs.ExperienceYears > *f.MaxExperience {
		return false
	}

	if len(f.Languages) > 0 {
		found := false
		for _, want := range f.Languages {
			for _, have := range attrs.Languages {
				if strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(have)) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Location != "" {
		if !strings.Contains(strings.ToLower(attrs.Location), strings.ToLower(f.Location)) {
			return false
		}
	}

	return true
}
