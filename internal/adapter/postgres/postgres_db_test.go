package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database when GORIDE_TEST_DATABASE_DSN is set.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("GORIDE_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("GORIDE_TEST_DATABASE_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, "migrations"))
	return db
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	ns := uuid.NewString() + ":"

	require.NoError(t, repo.Set(ctx, map[string][]byte{
		ns + domain.AccessTokenKey:  []byte("access"),
		ns + domain.RefreshTokenKey: []byte("refresh"),
	}, 0))

	v, err := repo.Get(ctx, ns+domain.AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("access"), v)

	require.NoError(t, repo.Set(ctx, map[string][]byte{ns + domain.AccessTokenKey: []byte("rotated")}, 0))
	v, err = repo.Get(ctx, ns+domain.AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("rotated"), v)

	require.NoError(t, repo.Delete(ctx, ns+domain.AccessTokenKey, ns+domain.RefreshTokenKey))
	_, err = repo.Get(ctx, ns+domain.RefreshTokenKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSessionRepository_Expiry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	key := uuid.NewString()

	require.NoError(t, repo.Set(ctx, map[string][]byte{key: []byte("v")}, time.Minute))

	repo.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err := repo.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	n, err := repo.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}
