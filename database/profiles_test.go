package database

import (
	"context"
	"testing"

	"beyondylc/apperrors"
	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	userID := uuid.New()

	created, err := db.UpsertProfile(ctx, userID, models.UpsertProfileRequest{
		DisplayName: "Ana Silva",
		Bio:         "YLC 2023 alum",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.ID)
	assert.Equal(t, "Ana Silva", created.DisplayName)

	updated, err := db.UpsertProfile(ctx, userID, models.UpsertProfileRequest{
		DisplayName: "Ana S.",
		AvatarURL:   "https://cdn.example.com/ana.png",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, updated.ID)
	assert.Equal(t, "Ana S.", updated.DisplayName)
	assert.Equal(t, "https://cdn.example.com/ana.png", updated.AvatarURL)
}

func TestGetProfile_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	_, err := db.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetProfilesByIDs_MissingAreAbsent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	known := uuid.New()
	unknown := uuid.New()

	_, err := db.UpsertProfile(ctx, known, models.UpsertProfileRequest{DisplayName: "Known"})
	require.NoError(t, err)

	profiles, err := db.GetProfilesByIDs(ctx, []uuid.UUID{known, unknown})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Contains(t, profiles, known)
	assert.NotContains(t, profiles, unknown)
}
