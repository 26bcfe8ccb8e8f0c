package directory

import (
	"context"
	"sync"

	"beyondylc/apperrors"
	"beyondylc/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one viewer's window onto the project directory: a cache of
// entries, the aggregator that fills it, and the membership mutations
// that keep it consistent. All mutation goes through the session lock,
// so two operations issued back-to-back against the same project apply
// in issuance order.
type Session struct {
	viewerID   uuid.UUID
	cache      *Cache
	aggregator *Aggregator
	backend    Backend
	store      SnapshotStore // nil means cache-only
	generation func() uint64
	logger     *zap.Logger

	mu sync.Mutex
}

// Entries returns the viewer's directory, fetching it if this session has
// not done so yet. With refresh set, the session snapshot is dropped and
// the three relations are refetched regardless of cache state.
func (s *Session) Entries(ctx context.Context, refresh bool) ([]models.DirectoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if refresh {
		s.cache.Invalidate()
		if s.store != nil {
			if err := s.store.Drop(ctx, s.viewerID); err != nil {
				s.logger.Warn("failed to drop directory snapshot", zap.Error(err))
			}
		}
	}

	if err := s.ensureFreshLocked(ctx, refresh); err != nil {
		return nil, err
	}
	return s.cache.Get(), nil
}

// Join adds the viewer to a project. Preconditions are re-read from the
// latest cache state at invocation time: the viewer must not already be a
// member, and a declared member cap must not be reached. On success the
// entry is patched (count +1, joined); on failure the cache is left
// untouched and nothing is retried.
func (s *Session) Join(ctx context.Context, projectID uuid.UUID) (models.DirectoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewerID == uuid.Nil {
		return models.DirectoryEntry{}, apperrors.ErrNotAuthenticated
	}
	if err := s.ensureFreshLocked(ctx, false); err != nil {
		return models.DirectoryEntry{}, err
	}

	entry, ok := s.cache.Lookup(projectID)
	if !ok {
		return models.DirectoryEntry{}, apperrors.ErrNotFound
	}
	if entry.IsJoined {
		return models.DirectoryEntry{}, apperrors.ErrAlreadyMember
	}
	if entry.Full() {
		return models.DirectoryEntry{}, apperrors.ErrProjectFull
	}

	if err := s.backend.AddMember(ctx, projectID, s.viewerID); err != nil {
		return models.DirectoryEntry{}, err
	}

	s.cache.Patch(projectID, func(e *models.DirectoryEntry) {
		e.MemberCount++
		e.IsJoined = true
	})
	s.persistLocked(ctx)

	patched, _ := s.cache.Lookup(projectID)
	return patched, nil
}

// Leave removes the viewer from a project they are a member of. The
// confirmation step guarding this destructive action lives at the HTTP
// boundary; by the time Leave runs the viewer has confirmed.
func (s *Session) Leave(ctx context.Context, projectID uuid.UUID) (models.DirectoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewerID == uuid.Nil {
		return models.DirectoryEntry{}, apperrors.ErrNotAuthenticated
	}
	if err := s.ensureFreshLocked(ctx, false); err != nil {
		return models.DirectoryEntry{}, err
	}

	entry, ok := s.cache.Lookup(projectID)
	if !ok {
		return models.DirectoryEntry{}, apperrors.ErrNotFound
	}
	if !entry.IsJoined {
		return models.DirectoryEntry{}, apperrors.ErrNotMember
	}

	if err := s.backend.RemoveMember(ctx, projectID, s.viewerID); err != nil {
		return models.DirectoryEntry{}, err
	}

	s.cache.Patch(projectID, func(e *models.DirectoryEntry) {
		if e.MemberCount > 0 {
			e.MemberCount--
		}
		e.IsJoined = false
	})
	s.persistLocked(ctx)

	patched, _ := s.cache.Lookup(projectID)
	return patched, nil
}

// DeleteProject deletes a project the viewer created, memberships
// included, and drops its entry from the cache. The caller navigates
// away on success.
func (s *Session) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewerID == uuid.Nil {
		return apperrors.ErrNotAuthenticated
	}
	if err := s.ensureFreshLocked(ctx, false); err != nil {
		return err
	}

	entry, ok := s.cache.Lookup(projectID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if entry.CreatorID != s.viewerID {
		return apperrors.ErrNotCreator
	}

	if err := s.backend.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	s.cache.Remove(projectID)
	s.persistLocked(ctx)
	return nil
}

// ensureFreshLocked fills the cache if this session has not fetched yet.
// A persisted snapshot from the current generation short-circuits the
// three-relation fetch; anything older is refetched. Caller holds s.mu.
func (s *Session) ensureFreshLocked(ctx context.Context, skipStore bool) error {
	if s.cache.Fetched() {
		return nil
	}

	if s.store != nil && !skipStore {
		snap, err := s.store.Load(ctx, s.viewerID)
		if err != nil {
			s.logger.Warn("failed to load directory snapshot", zap.Error(err))
		} else if snap != nil && snap.Generation == s.generation() {
			s.cache.Replace(snap.Entries)
			return nil
		}
	}

	entries, err := s.aggregator.Fetch(ctx, s.viewerID)
	if err != nil {
		// Prior snapshot and fetched flag stay as they were; the next
		// visit retries.
		return err
	}

	s.cache.Replace(entries)
	s.persistLocked(ctx)
	return nil
}

// persistLocked writes the current cache to session storage. Persistence
// is an optimization; failures are logged and the operation proceeds.
func (s *Session) persistLocked(ctx context.Context) {
	if s.store == nil {
		return
	}
	snap := Snapshot{Generation: s.generation(), Entries: s.cache.Get()}
	if err := s.store.Save(ctx, s.viewerID, snap); err != nil {
		s.logger.Warn("failed to save directory snapshot", zap.Error(err))
	}
}
