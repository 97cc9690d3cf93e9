package offer

import (
	"context"

	"ai-store/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Offer, error)
	Create(ctx context.Context, o domain.Offer) (*domain.Offer, error)
}
