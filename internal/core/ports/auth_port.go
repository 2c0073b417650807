package ports

import (
	"context"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

// TokenService signs and verifies the browser session cookie.
type TokenService interface {
	CreateToken(payload *domain.SessionTokenPayload) (string, error)
	VerifyToken(token string) (*domain.SessionTokenPayload, error)
}

type AuthClient interface {
	Login(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error)
	Register(ctx context.Context, payload domain.RegisterPayload) (domain.Result[domain.UserProfile], error)
	Profile(ctx context.Context, accessToken string) (domain.Result[domain.UserProfile], error)
	Refresh(ctx context.Context, refreshToken string) (domain.Result[domain.LoginData], error)
}
