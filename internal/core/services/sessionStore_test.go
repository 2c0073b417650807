package services

import (
	"context"
	"testing"

	"github.com/sm8ta/goride_admin_dashboard/internal/adapter/memory"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	assert.False(t, store.IsLoggedIn(ctx))
	assert.Nil(t, store.GetUser(ctx))

	require.NoError(t, store.SetTokens(ctx, "access-1", "refresh-1"))
	require.NoError(t, store.SetUser(ctx, &domain.UserProfile{ID: "u1", Name: "Admin", Role: domain.Admin}))

	assert.True(t, store.IsLoggedIn(ctx))
	assert.Equal(t, "access-1", store.GetAccessToken(ctx))
	assert.Equal(t, "refresh-1", store.GetRefreshToken(ctx))
	user := store.GetUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, user.IsAdmin())

	require.NoError(t, store.ClearTokens(ctx))
	snap := store.Snapshot(ctx)
	assert.Empty(t, snap.AccessToken)
	assert.Empty(t, snap.RefreshToken)
	assert.Nil(t, snap.User)
}

func TestSessionStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewSessionBackend()
	a := NewSessionStore(backend, "a", 0, nopLogger)
	b := NewSessionStore(backend, "b", 0, nopLogger)

	require.NoError(t, a.SetTokens(ctx, "token-a", "refresh-a"))

	assert.True(t, a.IsLoggedIn(ctx))
	assert.False(t, b.IsLoggedIn(ctx))

	require.NoError(t, b.ClearTokens(ctx))
	assert.Equal(t, "token-a", a.GetAccessToken(ctx))
}

func TestSessionStore_FailingBackendReadsAsLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(failingBackend{}, "s", 0, nopLogger)

	assert.False(t, store.IsLoggedIn(ctx))
	assert.Empty(t, store.GetRefreshToken(ctx))
	assert.Nil(t, store.GetUser(ctx))
	assert.Error(t, store.SetTokens(ctx, "a", "r"))
	assert.Error(t, store.ClearTokens(ctx))
}

func TestSessionStore_NilBackend(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(nil, "", 0, nopLogger)

	assert.False(t, store.IsLoggedIn(ctx))
	assert.ErrorIs(t, store.SetTokens(ctx, "a", "r"), domain.ErrBackendUnavailable)
	assert.NoError(t, store.ClearTokens(ctx))
}

func TestSessionStore_CorruptUserReadsAsNil(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewSessionBackend()
	store := NewSessionStore(backend, "s", 0, nopLogger)

	require.NoError(t, backend.Set(ctx, map[string][]byte{"s:" + domain.UserKey: []byte("{not json")}, 0))

	assert.Nil(t, store.GetUser(ctx))
}
