package directory

import (
	"sync"

	"beyondylc/models"

	"github.com/google/uuid"
)

// Cache holds the session's best-known list of directory entries plus a
// flag recording whether a full fetch has ever completed. Readers always
// see a fully-replaced or fully-patched snapshot; Get returns a copy so
// callers can never observe a write in progress.
type Cache struct {
	mu      sync.RWMutex
	entries []models.DirectoryEntry
	fetched bool
}

func NewCache() *Cache {
	return &Cache{}
}

// Get returns a snapshot of the current entries. Never blocks on I/O.
func (c *Cache) Get() []models.DirectoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]models.DirectoryEntry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// Fetched reports whether a full fetch has completed this session.
func (c *Cache) Fetched() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetched
}

// Replace atomically swaps the whole snapshot and marks the cache fetched.
func (c *Cache) Replace(entries []models.DirectoryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make([]models.DirectoryEntry, len(entries))
	copy(c.entries, entries)
	c.fetched = true
}

// Patch applies fn to the single entry with the given project ID, leaving
// all others untouched. No-op if the ID is absent. Returns whether an
// entry was patched.
func (c *Cache) Patch(projectID uuid.UUID, fn func(*models.DirectoryEntry)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == projectID {
			fn(&c.entries[i])
			return true
		}
	}
	return false
}

// Lookup returns a copy of the entry with the given project ID.
func (c *Cache) Lookup(projectID uuid.UUID) (models.DirectoryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		if entry.ID == projectID {
			return entry, true
		}
	}
	return models.DirectoryEntry{}, false
}

// Remove drops the entry with the given project ID, if present.
func (c *Cache) Remove(projectID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == projectID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Invalidate clears the fetched flag so the next read triggers a refetch.
// The stale entries stay visible until the refetch completes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = false
}
