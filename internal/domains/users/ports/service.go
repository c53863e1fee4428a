package ports

import (
	"context"
	"errors"

	"github.com/amrutdhara/orders-api/internal/domains/users/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Session is an issued sign-in session.
type Session struct {
	Token string
	User  *domain.User
}

// Service exposes identity use cases to adapters.
type Service interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}
