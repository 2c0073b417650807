package services

import (
	"context"
	"testing"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_MountReadsSession(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	shell, _ := newTestShell(&fakeAuth{}, store)

	assert.Equal(t, AuthChecking, shell.View().State)
	shell.Mount(ctx)
	assert.Equal(t, AuthUnauthenticated, shell.View().State)

	admin := fakeAdmin()
	require.NoError(t, store.SetTokens(ctx, "a", "r"))
	require.NoError(t, store.SetUser(ctx, admin))
	shell, _ = newTestShell(&fakeAuth{}, store)
	shell.Mount(ctx)

	v := shell.View()
	assert.Equal(t, AuthAuthenticated, v.State)
	assert.Equal(t, PageDashboard, v.ActivePage)
	require.NotNil(t, v.User)
	assert.Equal(t, admin.ID, v.User.ID)
}

func TestShell_LoginAndLogout(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	auth := loginReturning(domain.LoginData{AccessToken: "a", RefreshToken: "r", User: fakeAdmin()})
	shell, toasts := newTestShell(auth, store)
	shell.Mount(ctx)

	var resets int
	shell.OnLogout(func() { resets++ })

	require.NoError(t, shell.Login(ctx, domain.LoginCredentials{Email: "admin@goride.vn", Password: "pw"}))
	assert.True(t, shell.Authenticated())
	assert.Equal(t, []string{domain.MsgWelcome}, toastMessages(toasts))

	assert.Equal(t, PageRentals, shell.Navigate("rentals"))

	require.NoError(t, shell.Logout(ctx))
	v := shell.View()
	assert.Equal(t, AuthUnauthenticated, v.State)
	assert.Equal(t, PageDashboard, v.ActivePage)
	assert.Nil(t, v.User)
	assert.False(t, store.IsLoggedIn(ctx))
	assert.Equal(t, 1, resets)
	assert.Equal(t, []string{domain.MsgWelcome, domain.MsgLoggedOut}, toastMessages(toasts))
}

func TestShell_LoginFailureStaysUnauthenticated(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{
		login: func(ctx context.Context, creds domain.LoginCredentials) (domain.Result[domain.LoginData], error) {
			return domain.Err[domain.LoginData]("Invalid credentials"), nil
		},
	}
	shell, toasts := newTestShell(auth, newTestStore())
	shell.Mount(ctx)

	err := shell.Login(ctx, domain.LoginCredentials{Email: "admin@x.com", Password: "bad"})

	assert.EqualError(t, err, "Invalid credentials")
	assert.Equal(t, AuthUnauthenticated, shell.View().State)
	assert.Empty(t, toasts.Active())
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, PageBlogs, ParsePage("blogs"))
	assert.Equal(t, PageDashboard, ParsePage("settings"))
	assert.Equal(t, PageDashboard, ParsePage(""))
}
