package repository

import (
	"context"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

// GetByID fetches a provider; gorm.ErrRecordNotFound when absent.
func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	var p domain.Provider

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// ListServices returns every service of a provider, available or not.
func (r *ProviderRepository) ListServices(
	ctx context.Context,
	providerID int64,
	loc domain.Locale,
) ([]domain.ServiceView, error) {

	services := make([]domain.ServiceView, 0)
	err := r.db.WithContext(ctx).
		Table("services AS s").
		Select(
			"s.id, s." + loc.Column("title") + " AS title, " +
				"s." + loc.Column("description") + " AS description, " +
				"s.pricing_type, s.hourly_rate, s.fixed_price, s.currency, s.available, " +
				"c." + loc.Column("name") + " AS category",
		).
		Joins("JOIN categories c ON s.category_id = c.id").
		Where("s.provider_id = ?", providerID).
		Order("s.id ASC").
		Scan(&services).Error

	return services, err
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProviderRepository) CreateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}
