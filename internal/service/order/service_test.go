package order

import (
	"context"
	"errors"
	"testing"

	"ai-store/internal/domain"
)

type stubRepo struct {
	created      *domain.Order
	createErr    error
	lastCreated  domain.Order
	getResult    *domain.Order
	getErr       error
	listByUser   []domain.Order
	listAll      []domain.Order
	setStatusErr error
	lastStatusID string
	lastStatus   string
}

func (s *stubRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastCreated = o
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &o, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.getResult, s.getErr
}

func (s *stubRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.listByUser, nil
}

func (s *stubRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return s.listAll, nil
}

func (s *stubRepo) SetStatus(_ context.Context, id, status string) error {
	s.lastStatusID = id
	s.lastStatus = status
	return s.setStatusErr
}

func TestCreateEmptyItems(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Create(context.Background(), "u1", nil)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestCreateMalformedItems(t *testing.T) {
	svc := New(&stubRepo{})
	cases := [][]domain.OrderItem{
		{{ProductID: "", Qty: 1}},
		{{ProductID: "p1", Qty: 0}},
		{{ProductID: "p1", Qty: -2}},
	}
	for _, items := range cases {
		if _, err := svc.Create(context.Background(), "u1", items); !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("items %+v: expected ErrInvalidItem, got %v", items, err)
		}
	}
}

func TestCreatePersistsPending(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	o, err := svc.Create(context.Background(), "u1", []domain.OrderItem{{ProductID: "p1", Qty: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %q", o.Status)
	}
	if o.UserID != "u1" {
		t.Fatalf("expected owner u1, got %q", o.UserID)
	}
	if o.ID == "" {
		t.Fatalf("expected a server-assigned order id")
	}
	if len(repo.lastCreated.Items) != 1 || repo.lastCreated.Items[0].Qty != 2 {
		t.Fatalf("unexpected persisted items %+v", repo.lastCreated.Items)
	}
}

func TestGetOwner(t *testing.T) {
	repo := &stubRepo{getResult: &domain.Order{ID: "o1", UserID: "u1"}}
	svc := New(repo)

	o, err := svc.Get(context.Background(), "o1", domain.User{ID: "u1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != "o1" {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestGetForbiddenForStranger(t *testing.T) {
	repo := &stubRepo{getResult: &domain.Order{ID: "o1", UserID: "u1"}}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "o1", domain.User{ID: "u2", Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGetAllowedForAdmin(t *testing.T) {
	repo := &stubRepo{getResult: &domain.Order{ID: "o1", UserID: "u1"}}
	svc := New(repo)

	if _, err := svc.Get(context.Background(), "o1", domain.User{ID: "admin-id", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	repo := &stubRepo{getErr: domain.ErrNotFound}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "missing", domain.User{ID: "u1"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetStatusValidation(t *testing.T) {
	svc := New(&stubRepo{})
	if _, err := svc.SetStatus(context.Background(), "o1", "   "); !errors.Is(err, ErrEmptyStatus) {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}
}

func TestSetStatusAcceptsFreeText(t *testing.T) {
	// Statuses are operator-defined free text, not a closed enum.
	repo := &stubRepo{getResult: &domain.Order{ID: "o1", Status: "ready-for-carrier-pickup"}}
	svc := New(repo)

	o, err := svc.SetStatus(context.Background(), "o1", "ready-for-carrier-pickup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != "ready-for-carrier-pickup" {
		t.Fatalf("unexpected status written: %q", repo.lastStatus)
	}
	if o.Status != "ready-for-carrier-pickup" {
		t.Fatalf("unexpected status returned: %q", o.Status)
	}
}

func TestSetStatusNotFound(t *testing.T) {
	repo := &stubRepo{setStatusErr: domain.ErrNotFound}
	svc := New(repo)

	if _, err := svc.SetStatus(context.Background(), "missing", "shipped"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
