package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"orders/internal/cache"
)

const (
	confirmTokenKeyPrefix = "confirm_token:"
	resetTokenKeyPrefix   = "reset_token:"
	loginFailureKeyPrefix = "login_failures:"

	// ActionTokenTTL bounds the lifetime of confirmation and reset tokens.
	ActionTokenTTL = 3 * 24 * time.Hour
	// MaxLoginFailures is the number of failed attempts before lockout.
	MaxLoginFailures = 5
	// LockoutWindow is how long the failure counter (and thus the lockout) lasts.
	LockoutWindow = 5 * time.Minute
)

// TokenStoreInterface defines single-use action tokens and lockout counters.
type TokenStoreInterface interface {
	IssueConfirmationToken(ctx context.Context, userID uint) (string, error)
	ConsumeConfirmationToken(ctx context.Context, userID uint, token string) (bool, error)
	IssueResetToken(ctx context.Context, userID uint) (string, error)
	ConsumeResetToken(ctx context.Context, userID uint, token string) (bool, error)
	RegisterLoginFailure(ctx context.Context, email string) (int64, error)
	LoginFailures(ctx context.Context, email string) (int64, error)
	ClearLoginFailures(ctx context.Context, email string) error
}

// TokenStore keeps action tokens and lockout counters in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

func (s *TokenStore) issue(ctx context.Context, key string) (string, error) {
	token := uuid.New().String()
	if err := s.cache.Set(ctx, key, []byte(token), ActionTokenTTL); err != nil {
		return "", fmt.Errorf("store action token: %w", err)
	}
	return token, nil
}

// consume deletes the token on a match, making it single-use.
func (s *TokenStore) consume(ctx context.Context, key, token string) (bool, error) {
	stored, err := s.cache.Get(ctx, key)
	if err != nil || stored == nil {
		return false, nil
	}
	if string(stored) != token {
		return false, nil
	}
	_ = s.cache.Delete(ctx, key)
	return true, nil
}

// IssueConfirmationToken creates a new email confirmation token for the user.
// Re-issuing replaces any previous token.
func (s *TokenStore) IssueConfirmationToken(ctx context.Context, userID uint) (string, error) {
	return s.issue(ctx, fmt.Sprintf("%s%d", confirmTokenKeyPrefix, userID))
}

// ConsumeConfirmationToken validates and invalidates a confirmation token.
func (s *TokenStore) ConsumeConfirmationToken(ctx context.Context, userID uint, token string) (bool, error) {
	return s.consume(ctx, fmt.Sprintf("%s%d", confirmTokenKeyPrefix, userID), token)
}

// IssueResetToken creates a new password reset token for the user.
func (s *TokenStore) IssueResetToken(ctx context.Context, userID uint) (string, error) {
	return s.issue(ctx, fmt.Sprintf("%s%d", resetTokenKeyPrefix, userID))
}

// ConsumeResetToken validates and invalidates a password reset token.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, userID uint, token string) (bool, error) {
	return s.consume(ctx, fmt.Sprintf("%s%d", resetTokenKeyPrefix, userID), token)
}

// RegisterLoginFailure bumps the failure counter and restarts the lockout window.
func (s *TokenStore) RegisterLoginFailure(ctx context.Context, email string) (int64, error) {
	return s.cache.Incr(ctx, loginFailureKeyPrefix+email, LockoutWindow)
}

// LoginFailures returns the current failure count within the window.
func (s *TokenStore) LoginFailures(ctx context.Context, email string) (int64, error) {
	data, err := s.cache.Get(ctx, loginFailureKeyPrefix+email)
	if err != nil || data == nil {
		return 0, nil
	}
	var n int64
	if _, err := fmt.Sscan(string(data), &n); err != nil {
		return 0, nil
	}
	return n, nil
}

// ClearLoginFailures resets the counter after a successful login.
func (s *TokenStore) ClearLoginFailures(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, loginFailureKeyPrefix+email)
}
