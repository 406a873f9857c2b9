package repository

import (
	"context"
	"strings"
	"time"

	"aidemoi/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// GetByEmail matches case-insensitively; gorm.ErrRecordNotFound when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User

	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

// ExpireSubscriptions flips active subscriptions whose expiry is not after now.
func (r *UserRepository) ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("subscription_status = ?", domain.SubscriptionActive).
		Where("(subscription_expires_at IS NULL OR subscription_expires_at <= ?)", now.UTC()).
		Update("subscription_status", domain.SubscriptionExpired)

	return res.RowsAffected, res.Error
}
