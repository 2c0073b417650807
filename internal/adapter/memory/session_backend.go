package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// SessionBackend keeps session values in process memory.
type SessionBackend struct {
	mu     sync.RWMutex
	values map[string]entry
	now    func() time.Time
}

func NewSessionBackend() *SessionBackend {
	return &SessionBackend{
		values: make(map[string]entry),
		now:    time.Now,
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (b *SessionBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	if e.expired(b.now()) {
		delete(b.values, key)
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (b *SessionBackend) Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	// keys that are never read again are reclaimed here
	for k, e := range b.values {
		if e.expired(now) {
			delete(b.values, k)
		}
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}
	for k, v := range values {
		stored := make([]byte, len(v))
		copy(stored, v)
		b.values[k] = entry{value: stored, expiresAt: expiresAt}
	}
	return nil
}

func (b *SessionBackend) Delete(ctx context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range keys {
		delete(b.values, k)
	}
	return nil
}

func (b *SessionBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.values)
}
