package ports

import (
	"context"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
)

// Service exposes order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, ownerID string, order *domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
}
