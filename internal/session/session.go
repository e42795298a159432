// Package session is the client-side auth cache: the token and user record
// written at login, read at start-up and removed at logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"drepalife-app/internal/models"
	"drepalife-app/internal/storage"
	"drepalife-app/internal/utils"
)

const (
	TokenKey = "token"
	UserKey  = "user"
)

var (
	// ErrNoSession means nobody is logged in on this device.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired means the cached session was rejected or outlived its token.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Session is what the device remembers about the logged-in user.
type Session struct {
	Token string
	User  models.User
}

// ExpiresAt decodes the token expiry. ok is false for tokens that are not JWTs.
func (s *Session) ExpiresAt() (time.Time, bool) {
	return utils.TokenExpiry(s.Token)
}

// Cache reads and writes the session through a storage.Store.
type Cache struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewCache creates a Cache over store.
func NewCache(store storage.Store, logger *zap.Logger) *Cache {
	return &Cache{store: store, logger: logger, now: time.Now}
}

// Save writes the token and user entries.
func (c *Cache) Save(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := c.store.Set(ctx, TokenKey, token, 0); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := c.store.Set(ctx, UserKey, string(raw), 0); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	c.logger.Debug("session saved", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return nil
}

// Load returns the cached session. Both entries must be present. A JWT whose
// exp has passed is cleared and reported as ErrSessionExpired.
func (c *Cache) Load(ctx context.Context) (*Session, error) {
	token, err := c.store.Get(ctx, TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	raw, err := c.store.Get(ctx, UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		c.logger.Warn("discarding unreadable cached user", zap.Error(err))
		if err := c.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, ErrNoSession
	}

	s := &Session{Token: token, User: user}
	if exp, ok := s.ExpiresAt(); ok && !c.now().Before(exp) {
		c.logger.Info("cached token expired", zap.Time("expired_at", exp))
		if err := c.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Token returns the cached bearer token, or "" when logged out or when the
// cached token has expired (Load clears it in that case).
func (c *Cache) Token(ctx context.Context) (string, error) {
	s, err := c.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) || errors.Is(err, ErrSessionExpired) {
			return "", nil
		}
		return "", err
	}
	return s.Token, nil
}

// UpdateUser merges patch into the cached user record.
func (c *Cache) UpdateUser(ctx context.Context, patch models.User) (*models.User, error) {
	s, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.User.Merge(patch)
	if err := c.Save(ctx, s.Token, s.User); err != nil {
		return nil, err
	}
	return &s.User, nil
}

// Clear deletes both entries.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Delete(ctx, TokenKey, UserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	c.logger.Debug("session cleared")
	return nil
}
