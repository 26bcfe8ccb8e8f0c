package directory

import (
	"context"
	"fmt"
	"time"

	"beyondylc/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Aggregator reconstructs directory entries from three independently
// fetched relations: projects, memberships scoped to the fetched project
// IDs, and the profiles of the distinct creators referenced.
//
// Any of the three fetches failing aborts the whole aggregation; the
// caller's prior cache snapshot stays untouched so a retry happens on the
// next visit.
type Aggregator struct {
	backend Backend
	logger  *zap.Logger
}

func NewAggregator(backend Backend, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{backend: backend, logger: logger}
}

// Fetch builds the full entry list for the given viewer, newest first.
// A nil viewer ID (uuid.Nil) computes no joined flags.
func (a *Aggregator) Fetch(ctx context.Context, viewerID uuid.UUID) ([]models.DirectoryEntry, error) {
	start := time.Now()

	projects, err := a.backend.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	if len(projects) == 0 {
		return []models.DirectoryEntry{}, nil
	}

	projectIDs := make([]uuid.UUID, len(projects))
	creatorSet := map[uuid.UUID]struct{}{}
	for i, p := range projects {
		projectIDs[i] = p.ID
		creatorSet[p.CreatorID] = struct{}{}
	}
	creatorIDs := make([]uuid.UUID, 0, len(creatorSet))
	for id := range creatorSet {
		creatorIDs = append(creatorIDs, id)
	}

	memberships, err := a.backend.ListMemberships(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}

	counts := map[uuid.UUID]int{}
	joined := map[uuid.UUID]bool{}
	for _, m := range memberships {
		counts[m.ProjectID]++
		if viewerID != uuid.Nil && m.UserID == viewerID {
			joined[m.ProjectID] = true
		}
	}

	profiles, err := a.backend.GetProfilesByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch creator profiles: %w", err)
	}

	entries := make([]models.DirectoryEntry, len(projects))
	for i, p := range projects {
		creator := models.CreatorInfo{Name: models.AnonymousCreator}
		if profile, ok := profiles[p.CreatorID]; ok {
			creator = models.CreatorInfo{
				Name:      profile.DisplayName,
				AvatarURL: profile.AvatarURL,
			}
		}
		entries[i] = models.DirectoryEntry{
			Project:     p,
			MemberCount: counts[p.ID],
			IsJoined:    joined[p.ID],
			Creator:     creator,
		}
	}

	a.logger.Debug("directory aggregated",
		zap.Int("projects", len(projects)),
		zap.Int("memberships", len(memberships)),
		zap.Duration("duration", time.Since(start)))
	return entries, nil
}
