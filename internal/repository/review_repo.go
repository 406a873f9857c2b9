package repository

import (
	"context"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// RecentForProvider returns the newest reviews across all of a provider's
// services. UserName is nil for anonymous reviews or deleted users.
func (r *ReviewRepository) RecentForProvider(
	ctx context.Context,
	providerID int64,
	limit int,
) ([]domain.ReviewView, error) {

	serviceIDs := r.db.
		Table("services").
		Select("id").
		Where("provider_id = ?", providerID)

	reviews := make([]domain.ReviewView, 0)
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.rating, r.comment, r.created_at, u.name AS user_name").
		Joins("LEFT JOIN users u ON r.user_id = u.id").
		Where("r.service_id IN (?)", serviceIDs).
		Order("r.created_at DESC").
		Order("r.id DESC").
		Limit(limit).
		Scan(&reviews).Error

	return reviews, err
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
