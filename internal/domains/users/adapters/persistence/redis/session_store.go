package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	userports "github.com/amrutdhara/orders-api/internal/domains/users/ports"
)

// SessionStore keeps sessions in Redis with a TTL, so expiry needs no
// purger process.
type SessionStore struct {
	client   *goredis.Client
	sessionT time.Duration
}

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

const keyPrefix = "session:"

// NewSessionStore wires a Redis-backed session store. Caller owns client lifecycle.
func NewSessionStore(client *goredis.Client, sessionTTL time.Duration) *SessionStore {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &SessionStore{client: client, sessionT: sessionTTL}
}

// Save stores the token with the configured TTL.
func (s *SessionStore) Save(ctx context.Context, token, userID string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	userID = strings.TrimSpace(userID)
	if token == "" || userID == "" {
		return errors.New("token and user id are required")
	}
	return s.client.Set(ctx, keyPrefix+token, userID, s.sessionT).Err()
}

// Get resolves a token to its user.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	if err := s.ensureClient(); err != nil {
		return "", err
	}
	userID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", userports.ErrNoSession
		}
		return "", err
	}
	return userID, nil
}

// Delete removes a session by token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	return s.client.Del(ctx, keyPrefix+token).Err()
}

func (s *SessionStore) ensureClient() error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	return nil
}

var _ userports.SessionStore = (*SessionStore)(nil)
