package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/amrutdhara/orders-api/internal/domains/users/domain"
	"github.com/amrutdhara/orders-api/internal/domains/users/ports"
)

// AuthChangeFunc receives the signed-in user, or nil after a sign-out.
type AuthChangeFunc func(user *domain.User)

// Service exposes identity use cases: email/password sign-in, session
// lookup, and a change-notification subscription mirroring the hosted
// identity provider it replaces.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore

	mu          sync.RWMutex
	subscribers []AuthChangeFunc
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions}
}

// CreateUser provisions an account.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return s.repo.Save(ctx, user)
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*ports.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ports.ErrInvalidCredentials
	}
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, user.ID); err != nil {
		return nil, err
	}
	s.notifyAuthChange(user)
	return &ports.Session{Token: token, User: user}, nil
}

// SignOut invalidates the session. A missing session is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ports.ErrNoSession) {
		return err
	}
	s.notifyAuthChange(nil)
	return nil
}

// CurrentUser resolves a token to its account.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ports.ErrNoSession
	}
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}

// OnAuthChange registers a subscriber invoked with the user on sign-in and
// nil on sign-out.
func (s *Service) OnAuthChange(fn AuthChangeFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notifyAuthChange(user *domain.User) {
	s.mu.RLock()
	subscribers := make([]AuthChangeFunc, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subscribers {
		fn(user)
	}
}

var _ ports.Service = (*Service)(nil)
