package provider

import (
	"context"
	"errors"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

// RecentReviewsLimit caps the reviews returned with a provider.
const RecentReviewsLimit = 10

type Service struct {
	providers ProviderRepository
	reviews   ReviewRepository
}

func NewService(providers ProviderRepository, reviews ReviewRepository) *Service {
	return &Service{providers: providers, reviews: reviews}
}

// GetDetail loads a provider with all its services and latest reviews.
// It never returns a partial Detail: any failure yields nil.
func (s *Service) GetDetail(ctx context.Context, id int64, loc domain.Locale) (*Detail, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	services, err := s.providers.ListServices(ctx, id, loc)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.RecentForProvider(ctx, id, RecentReviewsLimit)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Provider: p,
		Services: services,
		Reviews:  reviews,
	}, nil
}
