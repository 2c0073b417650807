package services

import (
	"testing"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastQueue_ExpiresAfterTTL(t *testing.T) {
	q := NewToastQueue(0)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	q.Push(domain.ToastSuccess, "first")
	now = now.Add(2 * time.Second)
	q.Push(domain.ToastError, "second")

	assert.Equal(t, []string{"first", "second"}, toastMessages(q))

	now = now.Add(3 * time.Second)
	assert.Equal(t, []string{"second"}, toastMessages(q))

	now = now.Add(2 * time.Second)
	assert.Empty(t, q.Active())
}

func TestToastQueue_Dismiss(t *testing.T) {
	q := NewToastQueue(time.Minute)

	a := q.Push(domain.ToastInfo, "a")
	q.Push(domain.ToastWarning, "b")

	require.True(t, q.Dismiss(a.ID))
	assert.False(t, q.Dismiss(a.ID))
	assert.Equal(t, []string{"b"}, toastMessages(q))
}
