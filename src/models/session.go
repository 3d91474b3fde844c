package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminSession is a bearer session row. A token authenticates an admin
// iff its row exists and is unexpired; expiry is checked on every lookup.
type AdminSession struct {
	ID           uuid.UUID
	AdminID      uuid.UUID
	SessionToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// SessionIdentity is the admin identity resolved from a session token.
type SessionIdentity struct {
	AdminID    uuid.UUID
	AdminEmail string
	ExpiresAt  time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *SessionIdentity) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
