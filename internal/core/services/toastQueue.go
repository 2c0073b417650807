package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

type ToastSink interface {
	Push(level domain.ToastLevel, message string) domain.Toast
}

// ToastQueue holds toasts until they are dismissed or expire.
type ToastQueue struct {
	mu     sync.Mutex
	toasts []domain.Toast
	ttl    time.Duration
	now    func() time.Time
}

func NewToastQueue(ttl time.Duration) *ToastQueue {
	if ttl <= 0 {
		ttl = domain.ToastTTL
	}
	return &ToastQueue{ttl: ttl, now: time.Now}
}

func (q *ToastQueue) Push(level domain.ToastLevel, message string) domain.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	t := domain.Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: q.now(),
	}
	q.toasts = append(q.toasts, t)
	return t
}

func (q *ToastQueue) Active() []domain.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.expire()
	out := make([]domain.Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

func (q *ToastQueue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

func (q *ToastQueue) expire() {
	cutoff := q.now().Add(-q.ttl)
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if t.CreatedAt.After(cutoff) {
			kept = append(kept, t)
		}
	}
	q.toasts = kept
}
