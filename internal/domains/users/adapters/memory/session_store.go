package memory

import (
	"context"
	"sync"

	"github.com/amrutdhara/orders-api/internal/domains/users/ports"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, token, userID string) error {
	s.sessions.Store(token, userID)
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (string, error) {
	userID, ok := s.sessions.Load(token)
	if !ok {
		return "", ports.ErrNoSession
	}
	return userID.(string), nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
