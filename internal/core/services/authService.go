package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

// LoginError carries the text shown on the login screen.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

type AuthService struct {
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewAuthService(logger ports.LoggerPort, validate *validator.Validate) *AuthService {
	return &AuthService{
		logger:   logger,
		validate: validate,
	}
}

// Login authenticates creds and persists the session only for an admin.
// Every failure is a *LoginError and leaves the store untouched.
func (s *AuthService) Login(ctx context.Context, auth ports.AuthClient, store ports.SessionStore, creds domain.LoginCredentials) (*domain.UserProfile, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, &LoginError{Message: domain.MsgCredentialsRequired, Err: domain.ErrMissingFields}
	}

	res, err := auth.Login(ctx, creds)
	if err != nil {
		s.logger.Error("Login request failed", map[string]interface{}{
			"email": creds.Email,
			"error": err.Error(),
		})
		return nil, &LoginError{Message: domain.MsgUnreachable, Err: err}
	}
	data, ok := res.Get()
	if !ok {
		msg := messageOr(res.Message(), domain.MsgLoginFailed)
		s.logger.Warn("Login rejected", map[string]interface{}{
			"email":   creds.Email,
			"message": msg,
		})
		return nil, &LoginError{Message: msg, Err: &domain.ServerError{Message: msg}}
	}
	if data.AccessToken == "" {
		return nil, &LoginError{
			Message: domain.MsgLoginFailed,
			Err:     fmt.Errorf("login response without access token: %w", domain.ErrMalformedEnvelope),
		}
	}

	user := data.User
	if user == nil {
		profile, err := auth.Profile(ctx, data.AccessToken)
		if err != nil {
			return nil, &LoginError{Message: domain.MsgUnreachable, Err: err}
		}
		p, ok := profile.Get()
		if !ok {
			msg := messageOr(profile.Message(), domain.MsgLoginFailed)
			return nil, &LoginError{Message: msg, Err: &domain.ServerError{Message: msg}}
		}
		user = &p
	}

	if !user.IsAdmin() {
		s.logger.Warn("Non-admin login refused", map[string]interface{}{
			"user_id": user.ID,
			"role":    string(user.Role),
		})
		return nil, &LoginError{Message: domain.MsgAccessDenied, Err: domain.ErrAccessDenied}
	}

	if err := store.SetTokens(ctx, data.AccessToken, data.RefreshToken); err != nil {
		s.logger.Error("Failed to persist tokens", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, &LoginError{Message: domain.MsgSessionSaveFailed, Err: err}
	}
	if err := store.SetUser(ctx, user); err != nil {
		s.logger.Warn("Failed to persist user profile", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	s.logger.Info("Admin logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, store ports.SessionStore) error {
	const op = "services.AuthService.Logout"

	if err := store.ClearTokens(ctx); err != nil {
		s.logger.Error("Failed to clear session", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *AuthService) Refresh(ctx context.Context, auth ports.AuthClient, store ports.SessionStore) error {
	const op = "services.AuthService.Refresh"

	refreshToken := store.GetRefreshToken(ctx)
	if refreshToken == "" {
		return fmt.Errorf("%s: no refresh token: %w", op, domain.ErrNotFound)
	}
	res, err := auth.Refresh(ctx, refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	data, ok := res.Get()
	if !ok {
		return fmt.Errorf("%s: %w", op, &domain.ServerError{Message: messageOr(res.Message(), domain.MsgLoginFailed)})
	}
	if data.AccessToken == "" {
		return fmt.Errorf("%s: %w", op, domain.ErrMalformedEnvelope)
	}
	if data.RefreshToken == "" {
		data.RefreshToken = refreshToken
	}
	if err := store.SetTokens(ctx, data.AccessToken, data.RefreshToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
