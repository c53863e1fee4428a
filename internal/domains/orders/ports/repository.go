package ports

import (
	"context"
	"errors"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. Create assigns the identifier and creation
// timestamp; ListByOwner returns newest-first.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Order, error)
}
