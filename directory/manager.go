package directory

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager hands out one directory Session per viewer and owns the
// invalidation generation. Bumping the generation orphans every persisted
// snapshot at once, without having to enumerate Redis keys.
type Manager struct {
	backend Backend
	store   SnapshotStore
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	generation atomic.Uint64
}

func NewManager(backend Backend, store SnapshotStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		backend:  backend,
		store:    store,
		logger:   logger,
		sessions: map[uuid.UUID]*Session{},
	}
}

// Session returns the viewer's directory session, creating it on first use.
func (m *Manager) Session(viewerID uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[viewerID]; ok {
		return s
	}

	s := &Session{
		viewerID:   viewerID,
		cache:      NewCache(),
		aggregator: NewAggregator(m.backend, m.logger),
		backend:    m.backend,
		store:      m.store,
		generation: m.generation.Load,
		logger:     m.logger,
	}
	m.sessions[viewerID] = s
	return s
}

// InvalidateAll marks every session stale. Used after writes that change
// what other viewers should see, such as creating or editing a project.
// Stale entries remain visible until each session's next fetch.
func (m *Manager) InvalidateAll() {
	m.generation.Add(1)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.cache.Invalidate()
	}
	m.logger.Debug("directory sessions invalidated",
		zap.Int("sessions", len(m.sessions)))
}
