package application

import (
	"context"
	"errors"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
	"github.com/amrutdhara/orders-api/internal/domains/orders/ports"
)

// Service orchestrates order use cases.
type Service struct {
	repo     ports.Repository
	notifier ports.Notifier
}

func NewService(repo ports.Repository, notifier ports.Notifier) *Service {
	if notifier == nil {
		notifier = ports.NoopNotifier
	}
	return &Service{repo: repo, notifier: notifier}
}

// CreateOrder persists the order with status forced to pending and returns
// the stored row. Operator notification runs as a detached task: its outcome
// is never joined into this call's result, and cancelling the request
// context does not cancel it.
func (s *Service) CreateOrder(ctx context.Context, ownerID string, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	order.OwnerID = ownerID
	order.Status = domain.StatusPending
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	go s.notifier.OrderPlaced(context.WithoutCancel(ctx), saved)
	return saved, nil
}

// ListOrders returns all orders owned by the caller, newest first. An empty
// list is a valid result.
func (s *Service) ListOrders(ctx context.Context, ownerID string) ([]*domain.Order, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetOrderByID looks up a single order. A missing id yields ports.ErrNotFound.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
