package ports

import (
	"context"
	"errors"
)

// ErrNoSession indicates the token does not map to a live session.
var ErrNoSession = errors.New("no active session")

// SessionStore abstracts session/token persistence, keyed by token.
type SessionStore interface {
	Save(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// NoopSessionStore is a safe default when callers do not need session persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(_ context.Context, _, _ string) error { return nil }
func (noopSessionStore) Get(_ context.Context, _ string) (string, error) {
	return "", ErrNoSession
}
func (noopSessionStore) Delete(_ context.Context, _ string) error { return nil }
