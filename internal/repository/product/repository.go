package product

import (
	"context"

	"ai-store/internal/domain"
)

// Filter narrows List results. Query matches name, description and tags as a
// substring; Tags entries must all match.
type Filter struct {
	Query    string
	Category string
	Tags     []string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}
