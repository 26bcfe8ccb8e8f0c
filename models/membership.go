package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership records that a user belongs to a project.
// At most one row exists per (project, user) pair; the creator's row is
// inserted in the same transaction as the project itself.
type Membership struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	JoinedAt  time.Time `json:"joined_at" db:"joined_at"`
}
