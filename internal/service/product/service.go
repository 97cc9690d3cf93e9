package product

import (
	"context"
	"strings"

	"ai-store/internal/domain"
	productrepo "ai-store/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns products matching the raw query-string filters. Tags arrive
// comma-joined and every listed tag must match.
func (s *Service) List(ctx context.Context, query, category, tags string) ([]domain.Product, error) {
	f := productrepo.Filter{
		Query:    strings.TrimSpace(query),
		Category: strings.TrimSpace(category),
		Tags:     domain.SplitTags(tags),
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
