package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")

	s, err := New(path, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile, s.Profile())

	require.NoError(t, s.Set(ctx, map[string][]byte{
		domain.AccessTokenKey:  []byte("access"),
		domain.RefreshTokenKey: []byte("refresh"),
	}, 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reopened, err := New(path, "")
	require.NoError(t, err)
	v, err := reopened.Get(ctx, domain.AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "access", string(v))
}

func TestStore_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.yaml")

	staging, err := New(path, "staging")
	require.NoError(t, err)
	prod, err := New(path, "prod")
	require.NoError(t, err)

	require.NoError(t, staging.Set(ctx, map[string][]byte{domain.AccessTokenKey: []byte("s")}, 0))
	require.NoError(t, staging.SetAPIURL("http://staging.local/api/v1"))

	_, err = prod.Get(ctx, domain.AccessTokenKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.Equal(t, "http://staging.local/api/v1", staging.APIURL())
	assert.Empty(t, prod.APIURL())
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, err := New(filepath.Join(t.TempDir(), "session.yaml"), "")
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, 0))
	require.NoError(t, s.Delete(ctx, "a", "b"))

	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStore_CorruptFileIsUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [unclosed"), 0600))

	s := &Store{path: path, profile: DefaultProfile}
	_, err := s.Get(context.Background(), domain.AccessTokenKey)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
