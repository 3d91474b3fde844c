package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents an admin account. Admins are provisioned only
// through the create-admin CLI, never through the HTTP surface.
type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never expose
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}
