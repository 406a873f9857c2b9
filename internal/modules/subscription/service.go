package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
	now   func() time.Time
}

// NewService builds the lookup. A nil clock means time.Now.
func NewService(users UserRepository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{users: users, now: clock}
}

// Check reports whether the user with email has a live subscription.
// Unknown or blank emails are not an error; they are simply not subscribed.
func (s *Service) Check(ctx context.Context, email string) (Status, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Status{}, nil
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Status{}, nil
		}
		return Status{}, err
	}

	return Status{
		Found:      true,
		Subscribed: u.SubscriptionActive(s.now()),
		ExpiresAt:  u.SubscriptionExpiresAt,
	}, nil
}
