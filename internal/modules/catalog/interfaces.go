package catalog

import (
	"context"
	"time"

	"aidemoi/internal/domain"
	"aidemoi/internal/repository"
)

type CategoryRepository interface {
	List(ctx context.Context, loc domain.Locale) ([]domain.CategoryView, error)
}

type SearchRepository interface {
	Search(ctx context.Context, loc domain.Locale, f repository.SearchFilters) ([]domain.SearchResult, error)
}

type StatsRepository interface {
	CountProviders(ctx context.Context) (int64, error)
	CountAvailableServices(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context, now time.Time) (int64, error)
}
