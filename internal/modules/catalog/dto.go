package catalog

import (
	"strconv"
	"strings"

	"aidemoi/internal/domain"
	"aidemoi/internal/pkg/validator"
	"aidemoi/internal/repository"
)

// SearchQuery mirrors the query string of GET /api/search.
type SearchQuery struct {
	Lang     string `form:"lang"`
	Category string `form:"category" validate:"omitempty,number"`
	City     string `form:"city"`
	Country  string `form:"country"`
	Type     string `form:"type" validate:"omitempty,oneof=professional amateur"`
}

// Filters converts the raw query into repository filters. Values that cannot
// be used (non-numeric category, unknown type) are dropped, not rejected.
func (q SearchQuery) Filters() repository.SearchFilters {
	q.Category = strings.TrimSpace(q.Category)
	q.Type = strings.TrimSpace(q.Type)

	f := repository.SearchFilters{
		City:    strings.TrimSpace(q.City),
		Country: strings.TrimSpace(q.Country),
	}

	invalid := validator.Validate(q)

	if _, bad := invalid["category"]; !bad && q.Category != "" {
		if id, err := strconv.ParseInt(q.Category, 10, 64); err == nil {
			f.CategoryID = &id
		}
	}

	if _, bad := invalid["type"]; !bad && q.Type != "" {
		f.ProfileType = domain.ProfileType(q.Type)
	}

	return f
}
