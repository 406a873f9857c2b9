package provider

import (
	"context"

	"aidemoi/internal/domain"
)

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Provider, error)
	ListServices(ctx context.Context, providerID int64, loc domain.Locale) ([]domain.ServiceView, error)
}

type ReviewRepository interface {
	RecentForProvider(ctx context.Context, providerID int64, limit int) ([]domain.ReviewView, error)
}
