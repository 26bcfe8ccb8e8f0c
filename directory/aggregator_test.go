package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Fetch(t *testing.T) {
	now := time.Now()
	creatorID := uuid.New()
	viewerID := uuid.New()
	otherID := uuid.New()

	p1 := testProject("River Cleanup", creatorID, now)
	p2 := testProject("Food Drive", creatorID, now.Add(-time.Hour))

	backend := &fakeBackend{
		projects: []models.Project{p1, p2},
		memberships: []models.Membership{
			{ProjectID: p1.ID, UserID: creatorID},
			{ProjectID: p1.ID, UserID: viewerID},
			{ProjectID: p1.ID, UserID: otherID},
			{ProjectID: p2.ID, UserID: creatorID},
		},
		profiles: map[uuid.UUID]models.Profile{
			creatorID: {ID: creatorID, DisplayName: "Ana Silva", AvatarURL: "https://cdn.example.com/ana.png"},
		},
	}

	entries, err := NewAggregator(backend, nil).Fetch(context.Background(), viewerID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, p1.ID, entries[0].ID)
	assert.Equal(t, 3, entries[0].MemberCount)
	assert.True(t, entries[0].IsJoined)
	assert.Equal(t, "Ana Silva", entries[0].Creator.Name)
	assert.Equal(t, "https://cdn.example.com/ana.png", entries[0].Creator.AvatarURL)

	assert.Equal(t, p2.ID, entries[1].ID)
	assert.Equal(t, 1, entries[1].MemberCount)
	assert.False(t, entries[1].IsJoined)
}

func TestAggregator_Fetch_MissingProfileFallsBackToAnonymous(t *testing.T) {
	backend := &fakeBackend{
		projects: []models.Project{testProject("Orphaned", uuid.New(), time.Now())},
		profiles: map[uuid.UUID]models.Profile{},
	}

	entries, err := NewAggregator(backend, nil).Fetch(context.Background(), uuid.Nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AnonymousCreator, entries[0].Creator.Name)
	assert.Empty(t, entries[0].Creator.AvatarURL)
}

func TestAggregator_Fetch_NilViewerComputesNoJoinedFlags(t *testing.T) {
	memberID := uuid.New()
	p := testProject("River Cleanup", memberID, time.Now())

	backend := &fakeBackend{
		projects:    []models.Project{p},
		memberships: []models.Membership{{ProjectID: p.ID, UserID: memberID}},
	}

	entries, err := NewAggregator(backend, nil).Fetch(context.Background(), uuid.Nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].MemberCount)
	assert.False(t, entries[0].IsJoined)
}

func TestAggregator_Fetch_EmptyProjectsShortCircuits(t *testing.T) {
	backend := &fakeBackend{}

	entries, err := NewAggregator(backend, nil).Fetch(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAggregator_Fetch_AnyRelationFailingAborts(t *testing.T) {
	boom := errors.New("backend unreachable")
	p := testProject("River Cleanup", uuid.New(), time.Now())

	tests := []struct {
		name    string
		backend *fakeBackend
	}{
		{name: "projects fetch fails", backend: &fakeBackend{projectsErr: boom}},
		{name: "memberships fetch fails", backend: &fakeBackend{
			projects: []models.Project{p}, membershipsErr: boom}},
		{name: "profiles fetch fails", backend: &fakeBackend{
			projects: []models.Project{p}, profilesErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAggregator(tt.backend, nil).Fetch(context.Background(), uuid.New())
			assert.ErrorIs(t, err, boom)
		})
	}
}
