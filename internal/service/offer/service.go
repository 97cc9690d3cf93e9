package offer

import (
	"context"

	"ai-store/internal/domain"
	offerrepo "ai-store/internal/repository/offer"
)

type Service struct {
	repo offerrepo.Repository
}

func New(repo offerrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.ListActive(ctx)
}
