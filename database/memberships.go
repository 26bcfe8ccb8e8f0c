package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beyondylc/apperrors"
	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

// ListMemberships returns every membership row for the given projects.
// Empty input is a no-op and returns an empty slice.
func (db *DB) ListMemberships(ctx context.Context, projectIDs []uuid.UUID) ([]models.Membership, error) {
	if len(projectIDs) == 0 {
		return []models.Membership{}, nil
	}

	start := time.Now()
	defer func() {
		db.logger.Debug("ListMemberships",
			zap.Duration("duration", time.Since(start)),
			zap.Int("projects", len(projectIDs)))
	}()

	query := fmt.Sprintf(`
		SELECT %s, %s, joined_at
		FROM project_members
		WHERE %s = ANY($1)
	`, columnProjectID, columnUserID, columnProjectID)

	rows, err := db.Pool.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := []models.Membership{}
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ProjectID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	return memberships, nil
}

// AddMember inserts a membership row for the user. The member cap is
// re-checked inside the transaction so a join racing against the last open
// slot fails instead of overfilling the project. A duplicate join surfaces
// as ErrAlreadyMember via the (project_id, user_id) unique constraint.
func (db *DB) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var targetMembers, memberCount int
	err = tx.QueryRow(ctx, `
		SELECT p.target_members,
			(SELECT COUNT(*) FROM project_members m WHERE m.project_id = p.id)
		FROM projects p
		WHERE p.id = $1
		FOR UPDATE
	`, projectID).Scan(&targetMembers, &memberCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("project: %w", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to check project capacity: %w", err)
	}

	if targetMembers > 0 && memberCount >= targetMembers {
		return apperrors.ErrProjectFull
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
	`, projectID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit join: %w", err)
	}

	db.logger.Info("member joined",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

// RemoveMember deletes the user's membership row for the project.
func (db *DB) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	result, err := db.Pool.Exec(ctx, `
		DELETE FROM project_members
		WHERE project_id = $1 AND user_id = $2
	`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotMember
	}

	db.logger.Info("member left",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", userID.String()))
	return nil
}
