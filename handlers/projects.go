package handlers

import (
	"net/http"

	"beyondylc/apperrors"
	"beyondylc/database"
	"beyondylc/directory"
	"beyondylc/middleware"
	"beyondylc/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectsResponse is the response format for paginated project listings.
type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
	HasMore  bool             `json:"has_more"`
}

func CreateProject(db *database.DB, dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Debug("bind error", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		project, err := db.CreateProject(ctx, middleware.UserID(c), req)
		if err != nil {
			logger.Error("CreateProject database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
			return
		}

		// A new project changes every viewer's directory.
		dirs.InvalidateAll()

		c.JSON(http.StatusCreated, project)
	}
}

// ListProjects is the filtered, paginated project listing. Creator,
// category, status and free-text search filters run in the database;
// the member-enriched view lives on the directory endpoint instead.
func ListProjects(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query struct {
			CreatorID string `form:"creator_id"`
			Category  string `form:"category"`
			Status    string `form:"status"`
			Search    string `form:"search"`
			Limit     int    `form:"limit"`
			Offset    int    `form:"offset"`
			Mine      bool   `form:"mine"`
		}
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		params := database.ProjectQuery{
			Category: query.Category,
			Status:   query.Status,
			Search:   query.Search,
			Limit:    query.Limit,
			Offset:   query.Offset,
		}
		if query.Mine {
			params.CreatorID = middleware.UserID(c)
		} else if query.CreatorID != "" {
			creatorID, err := uuid.Parse(query.CreatorID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creator ID"})
				return
			}
			params.CreatorID = creatorID
		}

		ctx := c.Request.Context()
		projects, total, err := db.QueryProjects(ctx, params)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, ProjectsResponse{
			Projects: projects,
			Total:    total,
			Limit:    query.Limit,
			Offset:   query.Offset,
			HasMore:  int64(query.Offset+len(projects)) < total,
		})
	}
}

func GetProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, projectID)
		if err != nil {
			respondError(c, err, "failed to get project")
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

func UpdateProject(db *database.DB, dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		existing, err := db.GetProject(ctx, projectID)
		if err != nil {
			respondError(c, err, "failed to get project")
			return
		}
		if existing.CreatorID != middleware.UserID(c) {
			respondError(c, apperrors.ErrNotCreator, "")
			return
		}

		project, err := db.UpdateProject(ctx, projectID, req)
		if err != nil {
			logger.Error("UpdateProject database error", zap.Error(err))
			respondError(c, err, "failed to update project")
			return
		}

		dirs.InvalidateAll()

		c.JSON(http.StatusOK, project)
	}
}

// DeleteProject goes through the viewer's directory session so the
// creator check, cascade delete and cache removal stay in one place.
func DeleteProject(dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		session := dirs.Session(middleware.UserID(c))
		if err := session.DeleteProject(ctx, projectID); err != nil {
			logger.Error("DeleteProject error", zap.Error(err))
			respondError(c, err, "failed to delete project")
			return
		}

		// navigate tells the client to leave the project's page.
		c.JSON(http.StatusOK, gin.H{"message": "project deleted", "navigate": "/projects"})
	}
}
