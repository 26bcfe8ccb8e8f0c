package database

import (
	"context"
	"fmt"

	"beyondylc/apperrors"
	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, display_name, avatar_url, bio, location, created_at, updated_at`

func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE id = $1
	`, profileColumns)

	profile, err := scanProfile(db.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// GetProfilesByIDs fetches the given profiles keyed by user ID.
// IDs without a profile row are simply absent from the result; the
// directory substitutes a display placeholder for those.
func (db *DB) GetProfilesByIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.Profile, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]models.Profile{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE id = ANY($1)
	`, profileColumns)

	rows, err := db.Pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	defer rows.Close()

	profiles := map[uuid.UUID]models.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles[profile.ID] = *profile
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// UpsertProfile creates or replaces the viewer's own profile.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, req models.UpsertProfileRequest) (*models.Profile, error) {
	query := fmt.Sprintf(`
		INSERT INTO profiles (id, display_name, avatar_url, bio, location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			bio = EXCLUDED.bio,
			location = EXCLUDED.location,
			updated_at = NOW()
		RETURNING %s
	`, profileColumns)

	profile, err := scanProfile(db.Pool.QueryRow(ctx, query,
		userID, req.DisplayName, req.AvatarURL, req.Bio, req.Location))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return profile, nil
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Location,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
