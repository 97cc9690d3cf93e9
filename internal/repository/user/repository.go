package user

import (
	"context"

	"ai-store/internal/domain"
)

// UpdateInput carries optional profile changes; nil fields are left alone.
type UpdateInput struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.User, error)
}
