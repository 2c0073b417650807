package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenPayload is what the signed browser cookie carries.
type SessionTokenPayload struct {
	SessionID uuid.UUID
	IssuedAt  time.Time
}
