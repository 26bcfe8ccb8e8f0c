package database

import (
	"context"
	"fmt"
	"time"

	"beyondylc/apperrors"
	"beyondylc/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const projectColumns = `id, title, description, problem_statement, category, status,
		location, creator_id, target_members, image_url, created_at, updated_at`

// CreateProject inserts a new project and the creator's implicit membership
// row in a single transaction. New projects always start with status "idea".
func (db *DB) CreateProject(ctx context.Context, creatorID uuid.UUID, req models.CreateProjectRequest) (*models.Project, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`
		INSERT INTO projects (title, description, problem_statement, category, status,
			location, creator_id, target_members, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(tx.QueryRow(ctx, query,
		req.Title, req.Description, req.ProblemStatement, req.Category, models.StatusIdea,
		req.Location, creatorID, req.TargetMembers, req.ImageURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
	`, project.ID, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit project creation: %w", err)
	}

	db.logger.Info("created project",
		zap.String("title", project.Title),
		zap.String("id", project.ID.String()))
	return project, nil
}

// ListProjects returns every project, newest first. This is the read used
// by the directory aggregator; filtered reads go through QueryProjects.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		ORDER BY created_at DESC
	`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// ProjectQuery filters QueryProjects. Zero values mean "no filter".
type ProjectQuery struct {
	CreatorID uuid.UUID
	Category  string
	Status    string
	Search    string
	Limit     int
	Offset    int
}

// QueryProjects retrieves projects with filtering and pagination.
// Uses COUNT(*) OVER() to get the total count in a single query.
func (db *DB) QueryProjects(ctx context.Context, params ProjectQuery) ([]models.Project, int64, error) {
	start := time.Now()
	defer func() {
		db.logger.Debug("QueryProjects",
			zap.Duration("duration", time.Since(start)),
			zap.String("category", params.Category),
			zap.String("status", params.Status))
	}()

	qb := NewQueryBuilder()
	if params.CreatorID != uuid.Nil {
		qb.AddCondition(columnCreatorID, params.CreatorID)
	}
	if params.Category != "" {
		qb.AddCondition(columnCategory, params.Category)
	}
	if params.Status != "" {
		status, err := models.ParseStatus(params.Status)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid status filter: %w", err)
		}
		// The terminal state exists under two spellings in older rows.
		if status == models.StatusCompleted {
			qb.AddInCondition(columnStatus, []string{"completed", "complete"})
		} else {
			qb.AddCondition(columnStatus, string(status))
		}
	}
	if params.Search != "" {
		qb.AddTextSearch(params.Search, columnTitle, columnDescription, columnProblemStatement)
	}

	limit := validateLimit(params.Limit, defaultLimit, maxLimit)
	offset := validateOffset(params.Offset)

	// SAFETY: All user input is parameterized via $N placeholders.
	// The where clause only contains fixed column names and SQL operators.
	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(*) OVER() as total_count
		FROM projects
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, projectColumns, qb.WhereClause(), qb.NextArgNum(), qb.NextArgNum()+1)

	args := append(qb.Args(), limit, offset)

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	var total int64
	for rows.Next() {
		project, scanTotal, err := scanProjectWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project row: %w", err)
		}
		total = scanTotal
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, total, nil
}

func (db *DB) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("project: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// UpdateProject applies the non-nil fields of req to a creator-owned project.
// Returns the updated row. Status strings are normalized before writing.
func (db *DB) UpdateProject(ctx context.Context, projectID uuid.UUID, req models.UpdateProjectRequest) (*models.Project, error) {
	qb := NewSetBuilder()
	qb.Set(columnTitle, req.Title)
	qb.Set(columnDescription, req.Description)
	qb.Set(columnProblemStatement, req.ProblemStatement)
	qb.Set(columnCategory, req.Category)
	qb.Set(columnLocation, req.Location)
	qb.Set(columnImageURL, req.ImageURL)
	if req.TargetMembers != nil {
		qb.SetValue(columnTargetMembers, *req.TargetMembers)
	}
	if req.Status != nil {
		status, err := models.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		qb.SetValue(columnStatus, string(status))
	}

	if qb.Empty() {
		return db.GetProject(ctx, projectID)
	}
	qb.SetValue("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, qb.SetClause(), qb.NextArgNum(), projectColumns)

	args := append(qb.Args(), projectID)

	project, err := scanProject(db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("project: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project and all of its membership rows in one
// transaction. The schema also declares ON DELETE CASCADE, so the
// membership delete can never be observed without the project delete.
func (db *DB) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_members WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to delete project memberships: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("project: %w", apperrors.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit project deletion: %w", err)
	}

	db.logger.Info("deleted project", zap.String("id", projectID.String()))
	return nil
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var status string
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ProblemStatement,
		&project.Category,
		&status,
		&project.Location,
		&project.CreatorID,
		&project.TargetMembers,
		&project.ImageURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Status = models.ScanStatus(status)
	return &project, nil
}

func scanProjectWithTotal(row rowScanner) (*models.Project, int64, error) {
	var project models.Project
	var status string
	var total int64
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ProblemStatement,
		&project.Category,
		&status,
		&project.Location,
		&project.CreatorID,
		&project.TargetMembers,
		&project.ImageURL,
		&project.CreatedAt,
		&project.UpdatedAt,
		&total,
	)
	if err != nil {
		return nil, 0, err
	}
	project.Status = models.ScanStatus(status)
	return &project, total, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
