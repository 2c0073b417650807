package resources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/ports"
)

type AuthClient struct {
	api ports.APIClient
}

func NewAuthClient(api ports.APIClient) *AuthClient {
	return &AuthClient{api: api}
}

// Login reports failures with the server's message first, unlike the
// resource calls which prefer the error field.
func (c *AuthClient) Login(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
	const op = "resources.AuthClient.Login"

	env, err := c.api.Do(ctx, ports.APIRequest{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   creds,
	})
	if err != nil {
		return domain.Result[domain.LoginData]{}, fmt.Errorf("%s: %w", op, err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return domain.Err[domain.LoginData](msg), nil
	}
	data, err := decodeItem[domain.LoginData](env)
	if err != nil {
		return domain.Result[domain.LoginData]{}, fmt.Errorf("%s: %w: %w", op, domain.ErrUnreachable, err)
	}
	return domain.Ok(data), nil
}

func (c *AuthClient) Register(ctx context.Context, payload domain.RegisterPayload) (domain.Result[domain.UserProfile], error) {
	return doOne[domain.UserProfile](ctx, c.api, "resources.AuthClient.Register", ports.APIRequest{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   payload,
	})
}

// Profile fetches the profile of accessToken's owner; an empty token uses
// the session's own.
func (c *AuthClient) Profile(ctx context.Context, accessToken string) (domain.Result[domain.UserProfile], error) {
	return doOne[domain.UserProfile](ctx, c.api, "resources.AuthClient.Profile", ports.APIRequest{
		Method:      http.MethodGet,
		Path:        "/auth/profile",
		BearerToken: accessToken,
	})
}

func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (domain.Result[domain.LoginData], error) {
	return doOne[domain.LoginData](ctx, c.api, "resources.AuthClient.Refresh", ports.APIRequest{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Body:   map[string]string{"refresh_token": refreshToken},
	})
}

// NewClients builds every resource client over one API client.
func NewClients(api ports.APIClient) ports.Clients {
	return ports.Clients{
		Auth:       NewAuthClient(api),
		Motorbikes: NewMotorbikeClient(api),
		Rentals:    NewRentalClient(api),
		Users:      NewUserClient(api),
		Blogs:      NewBlogClient(api),
		Promotions: NewPromotionClient(api),
	}
}
