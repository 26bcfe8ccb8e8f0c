package handlers

import (
	"net/http"

	"beyondylc/apperrors"
	"beyondylc/directory"
	"beyondylc/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetDirectory lists the viewer's project directory: every project
// enriched with member count, joined flag and creator info, filtered and
// sorted by the query parameters. The first call in a session fetches;
// later calls serve the session cache unless refresh=true.
func GetDirectory(dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query struct {
			Search   string `form:"search"`
			Category string `form:"category"`
			Status   string `form:"status"`
			Sort     string `form:"sort"`
			Refresh  bool   `form:"refresh"`
		}
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		session := dirs.Session(middleware.UserID(c))
		entries, err := session.Entries(ctx, query.Refresh)
		if err != nil {
			logger.Error("directory fetch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load directory"})
			return
		}

		visible := directory.ApplyView(entries, directory.ViewParams{
			Search:   query.Search,
			Category: query.Category,
			Status:   query.Status,
			Sort:     query.Sort,
		})

		c.JSON(http.StatusOK, gin.H{
			"projects": visible,
			"total":    len(visible),
		})
	}
}

func JoinProject(dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		session := dirs.Session(middleware.UserID(c))
		entry, err := session.Join(ctx, projectID)
		if err != nil {
			logger.Debug("join rejected",
				zap.String("project_id", projectID.String()),
				zap.Error(err))
			respondError(c, err, "failed to join project")
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// LeaveProject removes the viewer from a project. Leaving is destructive
// and irreversible within this flow, so the client must send an explicit
// confirmation.
func LeaveProject(dirs *directory.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		var req struct {
			Confirm bool `json:"confirm"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			respondError(c, apperrors.ErrConfirmRequired, "")
			return
		}

		ctx := c.Request.Context()
		session := dirs.Session(middleware.UserID(c))
		entry, err := session.Leave(ctx, projectID)
		if err != nil {
			logger.Debug("leave rejected",
				zap.String("project_id", projectID.String()),
				zap.Error(err))
			respondError(c, err, "failed to leave project")
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}
