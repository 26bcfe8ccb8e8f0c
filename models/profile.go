package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is an alum's public profile. The ID is the subject from the
// hosted auth provider's token, so profiles need no separate user table.
type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DisplayName string    `json:"display_name" binding:"required,min=2,max=100" db:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio         string    `json:"bio,omitempty" db:"bio"`
	Location    string    `json:"location,omitempty" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertProfileRequest is the payload for a viewer creating or editing
// their own profile.
type UpsertProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=100"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
}
