package catalog

import (
	"context"
	"fmt"
	"time"

	"aidemoi/internal/domain"
	"aidemoi/internal/repository"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	categories CategoryRepository
	search     SearchRepository
	stats      StatsRepository
	now        func() time.Time
}

// NewService wires the catalog queries. A nil clock means time.Now.
func NewService(
	categories CategoryRepository,
	search SearchRepository,
	stats StatsRepository,
	clock func() time.Time,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		categories: categories,
		search:     search,
		stats:      stats,
		now:        clock,
	}
}

func (s *Service) ListCategories(ctx context.Context, loc domain.Locale) ([]domain.CategoryView, error) {
	return s.categories.List(ctx, loc)
}

func (s *Service) Search(
	ctx context.Context,
	loc domain.Locale,
	f repository.SearchFilters,
) ([]domain.SearchResult, error) {
	return s.search.Search(ctx, loc, f)
}

// Stats runs the three counters concurrently; the first failure wins.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats
	now := s.now().UTC()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.stats.CountProviders(gctx)
		if err != nil {
			return fmt.Errorf("count providers: %w", err)
		}
		st.Providers = n
		return nil
	})

	g.Go(func() error {
		n, err := s.stats.CountAvailableServices(gctx)
		if err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		st.Services = n
		return nil
	})

	g.Go(func() error {
		n, err := s.stats.CountActiveUsers(gctx, now)
		if err != nil {
			return fmt.Errorf("count active users: %w", err)
		}
		st.ActiveUsers = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}
	return st, nil
}
