package repository

import (
	"context"
	"time"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountProviders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Provider{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountAvailableServices(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("available = ?", true).
		Count(&n).Error
	return n, err
}

// CountActiveUsers counts users whose subscription is active and unexpired at now.
func (r *StatsRepository) CountActiveUsers(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("subscription_status = ?", domain.SubscriptionActive).
		Where("subscription_expires_at > ?", now.UTC()).
		Count(&n).Error
	return n, err
}
