package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionBackend_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	b := NewSessionBackend()

	require.NoError(t, b.Set(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}, 0))

	v, err := b.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	require.NoError(t, b.Delete(ctx, "a", "b", "missing"))
	_, err = b.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.Zero(t, b.Len())
}

func TestSessionBackend_Expiry(t *testing.T) {
	ctx := context.Background()
	b := NewSessionBackend()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	require.NoError(t, b.Set(ctx, map[string][]byte{"k": []byte("v")}, time.Minute))

	_, err := b.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSessionBackend_ExpiredEntriesAreRemoved(t *testing.T) {
	ctx := context.Background()
	b := NewSessionBackend()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	require.NoError(t, b.Set(ctx, map[string][]byte{
		"read":   []byte("1"),
		"unread": []byte("2"),
	}, time.Minute))
	require.NoError(t, b.Set(ctx, map[string][]byte{"forever": []byte("3")}, 0))
	require.Equal(t, 3, b.Len())

	now = now.Add(2 * time.Minute)
	_, err := b.Get(ctx, "read")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	assert.Equal(t, 2, b.Len())

	require.NoError(t, b.Set(ctx, map[string][]byte{"fresh": []byte("4")}, time.Minute))
	assert.Equal(t, 2, b.Len())
	_, err = b.Get(ctx, "forever")
	assert.NoError(t, err)
}
