package order

import (
	"context"
	"errors"
	"strings"

	"ai-store/internal/domain"
	orderrepo "ai-store/internal/repository/order"
	"github.com/google/uuid"
)

var (
	// ErrEmptyOrder is returned when an order has no items.
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// ErrInvalidItem is returned for a missing product reference or
	// non-positive quantity.
	ErrInvalidItem = errors.New("order item is malformed")
	// ErrEmptyStatus is returned when a status transition has no target.
	ErrEmptyStatus = errors.New("status required")
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new pending order for userID. The items are trusted as
// submitted: no stock decrement, price capture or availability check happens
// here, matching the original checkout flow.
func (s *Service) Create(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" || item.Qty <= 0 {
			return nil, ErrInvalidItem
		}
	}
	return s.repo.Create(ctx, domain.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Items:  items,
		Status: domain.StatusPending,
	})
}

// ListByUser returns the user's own orders, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first. Callers must gate this behind
// the operator role.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// Get returns the order if the requester owns it or is an operator.
func (s *Service) Get(ctx context.Context, id string, requester domain.User) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != requester.ID && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// SetStatus transitions the order to any non-empty status string. Statuses
// are operator-defined free text; no set of terminal states exists.
func (s *Service) SetStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ErrEmptyStatus
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
