package ports

import (
	"context"
	"errors"

	"github.com/amrutdhara/orders-api/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")

// Repository persists user accounts.
type Repository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
