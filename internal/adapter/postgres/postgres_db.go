package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

// SessionRepository stores session values in the session_entries table.
type SessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *SessionRepository) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "postgres.SessionRepository.Get"

	query := `SELECT value FROM session_entries
              WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key, r.now()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

// Set upserts all values inside one transaction.
func (r *SessionRepository) Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error {
	const op = "postgres.SessionRepository.Set"

	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: r.now().Add(ttl), Valid: true}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO session_entries (key, value, expires_at, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()`

	for k, v := range values {
		if _, err := tx.ExecContext(ctx, query, k, v, expiresAt); err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
				return fmt.Errorf("%s: required field is missing: %w", op, err)
			}
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, keys ...string) error {
	const op = "postgres.SessionRepository.Delete"

	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM session_entries WHERE key = ANY($1)`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(keys)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PurgeExpired drops entries whose TTL has passed.
func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	const op = "postgres.SessionRepository.PurgeExpired"

	res, err := r.db.ExecContext(ctx, `DELETE FROM session_entries WHERE expires_at IS NOT NULL AND expires_at <= $1`, r.now())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
