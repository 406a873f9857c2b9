package repository

import (
	"context"
	"strings"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

// SearchFilters are optional and AND-combined. Zero values mean "no filter".
type SearchFilters struct {
	CategoryID  *int64
	City        string
	Country     string
	ProfileType domain.ProfileType
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search returns available services joined with their provider and category,
// best rated providers first. Filter values are always bound, never spliced.
func (r *SearchRepository) Search(
	ctx context.Context,
	loc domain.Locale,
	f SearchFilters,
) ([]domain.SearchResult, error) {

	q := r.db.WithContext(ctx).
		Table("services AS s").
		Select(strings.Join([]string{
			"p.id AS provider_id",
			"p.name AS provider_name",
			"p.email",
			"p.phone",
			"p.bio",
			"p.profile_type",
			"p.city",
			"p.country",
			"p.address",
			"p.rating",
			"p.total_reviews",
			"p.verified",
			"s.id AS service_id",
			"s." + loc.Column("title") + " AS service_title",
			"s." + loc.Column("description") + " AS service_description",
			"s.pricing_type",
			"s.hourly_rate",
			"s.fixed_price",
			"s.currency",
			"c." + loc.Column("name") + " AS category_name",
		}, ", ")).
		Joins("JOIN providers p ON s.provider_id = p.id").
		Joins("JOIN categories c ON s.category_id = c.id").
		Where("s.available = ?", true)

	if f.City != "" {
		q = q.Where(`LOWER(p.city) LIKE LOWER(?) ESCAPE '\'`, containsPattern(f.City))
	}

	if f.Country != "" {
		q = q.Where(`LOWER(p.country) LIKE LOWER(?) ESCAPE '\'`, containsPattern(f.Country))
	}

	if f.CategoryID != nil {
		q = q.Where("s.category_id = ?", *f.CategoryID)
	}

	if f.ProfileType != "" {
		q = q.Where("p.profile_type = ?", string(f.ProfileType))
	}

	results := make([]domain.SearchResult, 0)
	err := q.
		Order("p.rating DESC").
		Order("p.total_reviews DESC").
		Order("s.id ASC").
		Scan(&results).Error

	return results, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching v literally anywhere in the column.
func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}
