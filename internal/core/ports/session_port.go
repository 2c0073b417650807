package ports

import (
	"context"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

// SessionBackend is durable key/value storage for session values.
// Get returns domain.ErrKeyNotFound for a missing key.
type SessionBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type TokenSource interface {
	GetAccessToken(ctx context.Context) string
}

type SessionStore interface {
	TokenSource
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	GetRefreshToken(ctx context.Context) string
	SetUser(ctx context.Context, user *domain.UserProfile) error
	GetUser(ctx context.Context) *domain.UserProfile
	ClearTokens(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	Snapshot(ctx context.Context) domain.Session
}
