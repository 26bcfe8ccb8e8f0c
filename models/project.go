package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a Social Action Project (SAP) in Beyond YLC.
// Projects are created by an alum, who becomes the creator and an
// implicit first member. All membership rows belong to exactly one project.
type Project struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	Title            string        `json:"title" binding:"required,min=3,max=255" db:"title"`
	Description      string        `json:"description" binding:"required" db:"description"`
	ProblemStatement string        `json:"problem_statement,omitempty" db:"problem_statement"`
	Category         string        `json:"category" db:"category"`
	Status           ProjectStatus `json:"status" db:"status"`
	Location         string        `json:"location" db:"location"`
	CreatorID        uuid.UUID     `json:"creator_id" db:"creator_id"`
	TargetMembers    int           `json:"target_members,omitempty" db:"target_members"` // 0 means no cap
	ImageURL         string        `json:"image_url,omitempty" db:"image_url"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateProjectRequest is the payload for creating a new project.
// Status is fixed to "idea" at creation; the creator changes it later via edit.
type CreateProjectRequest struct {
	Title            string `json:"title" binding:"required,min=3,max=255"`
	Description      string `json:"description" binding:"required"`
	ProblemStatement string `json:"problem_statement"`
	Category         string `json:"category"`
	Location         string `json:"location"`
	TargetMembers    int    `json:"target_members" binding:"omitempty,min=2"`
	ImageURL         string `json:"image_url"`
}

// UpdateProjectRequest is the payload for a creator editing their project.
// Only non-nil fields are applied.
type UpdateProjectRequest struct {
	Title            *string `json:"title" binding:"omitempty,min=3,max=255"`
	Description      *string `json:"description"`
	ProblemStatement *string `json:"problem_statement"`
	Category         *string `json:"category"`
	Status           *string `json:"status"`
	Location         *string `json:"location"`
	TargetMembers    *int    `json:"target_members" binding:"omitempty,min=0"`
	ImageURL         *string `json:"image_url"`
}
