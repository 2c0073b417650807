package services

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginReturning(data domain.LoginData) *fakeAuth {
	return &fakeAuth{
		login: func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
			return domain.Ok(data), nil
		},
	}
}

func fakeAdmin() *domain.UserProfile {
	return &domain.UserProfile{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Role:  domain.Admin,
	}
}

func newTestShell(auth *fakeAuth, store *SessionStore) (*Shell, *ToastQueue) {
	toasts := NewToastQueue(time.Minute)
	shell := NewShell(store, auth, NewAuthService(nopLogger, testValidate), toasts, nopLogger)
	return shell, toasts
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	auth := &fakeAuth{
		login: func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
			assert.Equal(t, "admin@x.com", creds.Email)
			return domain.Err[domain.LoginData]("Invalid credentials"), nil
		},
	}
	svc := NewAuthService(nopLogger, testValidate)

	_, err := svc.Login(ctx, auth, store, domain.LoginCredentials{Email: "admin@x.com", Password: "bad"})

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "Invalid credentials", loginErr.Message)
	assert.False(t, store.IsLoggedIn(ctx))
	assert.Nil(t, store.GetUser(ctx))
}

func TestAuthService_CustomerIsDenied(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	customer := fakeAdmin()
	customer.Role = domain.Customer
	auth := loginReturning(domain.LoginData{AccessToken: "a", RefreshToken: "r", User: customer})
	svc := NewAuthService(nopLogger, testValidate)

	_, err := svc.Login(ctx, auth, store, domain.LoginCredentials{Email: customer.Email, Password: "secret"})

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Equal(t, domain.MsgAccessDenied, err.Error())
	assert.False(t, store.IsLoggedIn(ctx))
	assert.Empty(t, store.GetRefreshToken(ctx))
}

func TestAuthService_AdminIsPersisted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	admin := fakeAdmin()
	auth := loginReturning(domain.LoginData{AccessToken: "access", RefreshToken: "refresh", User: admin})
	svc := NewAuthService(nopLogger, testValidate)

	user, err := svc.Login(ctx, auth, store, domain.LoginCredentials{Email: admin.Email, Password: gofakeit.Password(true, true, true, false, false, 12)})

	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)
	assert.Equal(t, "access", store.GetAccessToken(ctx))
	assert.Equal(t, "refresh", store.GetRefreshToken(ctx))
	require.NotNil(t, store.GetUser(ctx))
	assert.Equal(t, admin.Email, store.GetUser(ctx).Email)
	assert.Zero(t, auth.profiles)
}

func TestAuthService_FetchesProfileWhenLoginHasNoUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	admin := fakeAdmin()
	auth := loginReturning(domain.LoginData{AccessToken: "access", RefreshToken: "refresh"})
	auth.profile = func(ctx context.Context, accessToken string) (domain.Result[domain.UserProfile], error) {
		assert.Equal(t, "access", accessToken)
		return domain.Ok(*admin), nil
	}
	svc := NewAuthService(nopLogger, testValidate)

	user, err := svc.Login(ctx, auth, store, domain.LoginCredentials{Email: admin.Email, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)
	assert.Equal(t, 1, auth.profiles)
	assert.True(t, store.IsLoggedIn(ctx))
}

func TestAuthService_Failures(t *testing.T) {
	tests := []struct {
		name    string
		auth    *fakeAuth
		creds   domain.LoginCredentials
		message string
	}{
		{
			name:    "missing password",
			auth:    loginReturning(domain.LoginData{}),
			creds:   domain.LoginCredentials{Email: "a@b.c"},
			message: domain.MsgCredentialsRequired,
		},
		{
			name: "unreachable",
			auth: &fakeAuth{
				login: func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
					return domain.Result[domain.LoginData]{}, errTransport
				},
			},
			creds:   domain.LoginCredentials{Email: "a@b.c", Password: "x"},
			message: domain.MsgUnreachable,
		},
		{
			name: "rejected without message",
			auth: &fakeAuth{
				login: func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
					return domain.Err[domain.LoginData](""), nil
				},
			},
			creds:   domain.LoginCredentials{Email: "a@b.c", Password: "x"},
			message: domain.MsgLoginFailed,
		},
		{
			name:    "no access token",
			auth:    loginReturning(domain.LoginData{User: fakeAdmin()}),
			creds:   domain.LoginCredentials{Email: "a@b.c", Password: "x"},
			message: domain.MsgLoginFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore()
			svc := NewAuthService(nopLogger, testValidate)

			_, err := svc.Login(ctx, tt.auth, store, tt.creds)

			var loginErr *LoginError
			require.ErrorAs(t, err, &loginErr)
			assert.Equal(t, tt.message, loginErr.Message)
			assert.False(t, store.IsLoggedIn(ctx))
		})
	}
}

func TestAuthService_SessionSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(failingBackend{}, "s", 0, nopLogger)
	auth := loginReturning(domain.LoginData{AccessToken: "a", User: fakeAdmin()})
	svc := NewAuthService(nopLogger, testValidate)

	_, err := svc.Login(ctx, auth, store, domain.LoginCredentials{Email: "a@b.c", Password: "x"})

	var loginErr *LoginError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, domain.MsgSessionSaveFailed, loginErr.Message)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	require.NoError(t, store.SetTokens(ctx, "old-access", "old-refresh"))
	auth := &fakeAuth{
		refresh: func(ctx context.Context, refreshToken string) (domain.Result[domain.LoginData], error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return domain.Ok(domain.LoginData{AccessToken: "new-access"}), nil
		},
	}
	svc := NewAuthService(nopLogger, testValidate)

	require.NoError(t, svc.Refresh(ctx, auth, store))

	assert.Equal(t, "new-access", store.GetAccessToken(ctx))
	assert.Equal(t, "old-refresh", store.GetRefreshToken(ctx))
}

func TestAuthService_RefreshWithoutToken(t *testing.T) {
	svc := NewAuthService(nopLogger, testValidate)

	err := svc.Refresh(context.Background(), &fakeAuth{}, newTestStore())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
