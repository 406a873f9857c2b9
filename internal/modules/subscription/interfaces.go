package subscription

import (
	"context"

	"aidemoi/internal/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
