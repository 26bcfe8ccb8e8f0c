package directory

import (
	"context"
	"sync"
	"time"

	"beyondylc/models"

	"github.com/google/uuid"
)

// fakeBackend is an in-memory Backend for unit tests.
type fakeBackend struct {
	mu          sync.Mutex
	projects    []models.Project
	memberships []models.Membership
	profiles    map[uuid.UUID]models.Profile

	projectsErr    error
	membershipsErr error
	profilesErr    error
	addErr         error
	removeErr      error
	deleteErr      error

	listProjectCalls int
	addCalls         int
	removeCalls      int
}

func (f *fakeBackend) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listProjectCalls++
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	out := make([]models.Project, len(f.projects))
	copy(out, f.projects)
	return out, nil
}

func (f *fakeBackend) ListMemberships(ctx context.Context, projectIDs []uuid.UUID) ([]models.Membership, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.membershipsErr != nil {
		return nil, f.membershipsErr
	}
	wanted := map[uuid.UUID]bool{}
	for _, id := range projectIDs {
		wanted[id] = true
	}
	out := []models.Membership{}
	for _, m := range f.memberships {
		if wanted[m.ProjectID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeBackend) GetProfilesByIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profilesErr != nil {
		return nil, f.profilesErr
	}
	out := map[uuid.UUID]models.Profile{}
	for _, id := range userIDs {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeBackend) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.memberships = append(f.memberships, models.Membership{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	})
	return nil
}

func (f *fakeBackend) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	if f.removeErr != nil {
		return f.removeErr
	}
	for i, m := range f.memberships {
		if m.ProjectID == projectID && m.UserID == userID {
			f.memberships = append(f.memberships[:i], f.memberships[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBackend) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, p := range f.projects {
		if p.ID == projectID {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			break
		}
	}
	kept := f.memberships[:0]
	for _, m := range f.memberships {
		if m.ProjectID != projectID {
			kept = append(kept, m)
		}
	}
	f.memberships = kept
	return nil
}

// fakeSnapshotStore is a map-backed SnapshotStore for unit tests.
type fakeSnapshotStore struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]Snapshot
	loadErr   error
	saveErr   error
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{snapshots: map[uuid.UUID]Snapshot{}}
}

func (s *fakeSnapshotStore) Load(ctx context.Context, viewerID uuid.UUID) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	snap, ok := s.snapshots[viewerID]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *fakeSnapshotStore) Save(ctx context.Context, viewerID uuid.UUID, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snapshots[viewerID] = snap
	return nil
}

func (s *fakeSnapshotStore) Drop(ctx context.Context, viewerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, viewerID)
	return nil
}

// Test data helpers

func testProject(title string, creatorID uuid.UUID, createdAt time.Time) models.Project {
	return models.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: "description of " + title,
		Category:    "environment",
		Status:      models.StatusIdea,
		CreatorID:   creatorID,
		CreatedAt:   createdAt,
	}
}

func testEntry(title string, memberCount int, createdAt time.Time) models.DirectoryEntry {
	return models.DirectoryEntry{
		Project: models.Project{
			ID:          uuid.New(),
			Title:       title,
			Description: "description of " + title,
			Status:      models.StatusIdea,
			CreatedAt:   createdAt,
		},
		MemberCount: memberCount,
		Creator:     models.CreatorInfo{Name: models.AnonymousCreator},
	}
}
