package search

import (
	"fmt"

	"github.com/talentgrid/talentsearch/core"
	"github.com/talentgrid/talentsearch/storage"
)

// UIFilters is the external filter shape consumed from the API layer.
// Absent fields impose no constraint.
type UIFilters struct {
	MinExperience *int
	MaxExperience *int
	Languages     []string
	Location      string
}

// ParseFilters maps UI filters to index-level filter predicates.
// Returns core.ErrInvalidFilter when the experience range is inverted; the
// caller must reject the request without issuing any index query.
func ParseFilters(filters UIFilters) (*storage.FilterSet, error) {
	if filters.MinExperience != nil && *filters.MinExperience < 0 {
		return nil, fmt.Errorf("min_experience %d is negative: %w", *filters.MinExperience, core.ErrInvalidFilter)
	}
	if filters.MaxExperience != nil && *filters.MaxExperience < 0 {
		return nil, fmt.Errorf("max_experience %d is negative: %w", *filters.MaxExperience, core.ErrInvalidFilter)
	}
	if filters.MinExperience != nil && filters.MaxExperience != nil &&
		*filters.MinExperience > *filters.MaxExperience {
		return nil, fmt.Errorf("min_experience %d exceeds max_experience %d: %w",
			*filters.MinExperience, *filters.MaxExperience, core.ErrInvalidFilter)
	}

	return &storage.FilterSet{
		MinExperience: filters.MinExperience,
		MaxExperience: filters.MaxExperience,
		Languages:     filters.Languages,
		Location:      filters.Location,
	}, nil
}
