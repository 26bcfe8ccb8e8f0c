package directory

import (
	"context"

	"beyondylc/models"

	"github.com/google/uuid"
)

// Backend is the data access surface the directory needs from the hosted
// backend: reads over the projects, project_members and profiles relations
// plus the three membership-affecting writes. *database.DB satisfies it.
type Backend interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListMemberships(ctx context.Context, projectIDs []uuid.UUID) ([]models.Membership, error)
	GetProfilesByIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error)
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}
