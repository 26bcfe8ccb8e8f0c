package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Snapshot is the session-persisted form of a viewer's directory cache.
// The generation records which invalidation epoch the snapshot belongs
// to; snapshots from an older epoch are treated as absent.
type Snapshot struct {
	Generation uint64                  `json:"generation"`
	Entries    []models.DirectoryEntry `json:"entries"`
}

// SnapshotStore persists one directory snapshot per viewer for the
// duration of a browsing session, so re-entering the directory within
// the session skips the three-relation refetch.
type SnapshotStore interface {
	Load(ctx context.Context, viewerID uuid.UUID) (*Snapshot, error)
	Save(ctx context.Context, viewerID uuid.UUID, snap Snapshot) error
	Drop(ctx context.Context, viewerID uuid.UUID) error
}

// NewRedisClient creates a Redis client for snapshot storage.
// Returns nil if Redis is not configured (addr is empty); the directory
// then runs cache-only.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// RedisSnapshotStore stores JSON-encoded snapshots in Redis with a TTL
// backstop on top of the explicit invalidation signals.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func snapshotKey(viewerID uuid.UUID) string {
	return fmt.Sprintf("directory:snapshot:%s", viewerID)
}

func (s *RedisSnapshotStore) Load(ctx context.Context, viewerID uuid.UUID) (*Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey(viewerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load directory snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode directory snapshot: %w", err)
	}
	return &snap, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, viewerID uuid.UUID, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode directory snapshot: %w", err)
	}

	if err := s.client.Set(ctx, snapshotKey(viewerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save directory snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Drop(ctx context.Context, viewerID uuid.UUID) error {
	if err := s.client.Del(ctx, snapshotKey(viewerID)).Err(); err != nil {
		return fmt.Errorf("failed to drop directory snapshot: %w", err)
	}
	return nil
}
