package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

// SessionStore persists the tokens and profile of one session. Reads never
// fail: a missing or broken backend reads as logged out.
type SessionStore struct {
	backend   ports.SessionBackend
	namespace string
	ttl       time.Duration
	logger    ports.LoggerPort
}

// NewSessionStore scopes keys under namespace when it is not empty. A nil
// backend is allowed.
func NewSessionStore(backend ports.SessionBackend, namespace string, ttl time.Duration, logger ports.LoggerPort) *SessionStore {
	return &SessionStore{
		backend:   backend,
		namespace: namespace,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *SessionStore) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}

func (s *SessionStore) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	const op = "services.SessionStore.SetTokens"

	if s.backend == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	}
	err := s.backend.Set(ctx, map[string][]byte{
		s.key(domain.AccessTokenKey):  []byte(accessToken),
		s.key(domain.RefreshTokenKey): []byte(refreshToken),
	}, s.ttl)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SessionStore) GetAccessToken(ctx context.Context) string {
	return s.read(ctx, domain.AccessTokenKey)
}

func (s *SessionStore) GetRefreshToken(ctx context.Context) string {
	return s.read(ctx, domain.RefreshTokenKey)
}

func (s *SessionStore) SetUser(ctx context.Context, user *domain.UserProfile) error {
	const op = "services.SessionStore.SetUser"

	if s.backend == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.backend.Set(ctx, map[string][]byte{s.key(domain.UserKey): data}, s.ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SessionStore) GetUser(ctx context.Context) *domain.UserProfile {
	raw := s.read(ctx, domain.UserKey)
	if raw == "" {
		return nil
	}
	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("Stored user profile is not valid JSON", map[string]interface{}{
			"namespace": s.namespace,
			"error":     err.Error(),
		})
		return nil
	}
	return &user
}

func (s *SessionStore) ClearTokens(ctx context.Context) error {
	const op = "services.SessionStore.ClearTokens"

	if s.backend == nil {
		return nil
	}
	err := s.backend.Delete(ctx,
		s.key(domain.AccessTokenKey),
		s.key(domain.RefreshTokenKey),
		s.key(domain.UserKey),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SessionStore) IsLoggedIn(ctx context.Context) bool {
	return s.GetAccessToken(ctx) != ""
}

func (s *SessionStore) Snapshot(ctx context.Context) domain.Session {
	return domain.Session{
		AccessToken:  s.GetAccessToken(ctx),
		RefreshToken: s.GetRefreshToken(ctx),
		User:         s.GetUser(ctx),
	}
}

func (s *SessionStore) read(ctx context.Context, name string) string {
	if s.backend == nil {
		return ""
	}
	val, err := s.backend.Get(ctx, s.key(name))
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Warn("Session backend read failed", map[string]interface{}{
				"key":   name,
				"error": err.Error(),
			})
		}
		return ""
	}
	return string(val)
}
