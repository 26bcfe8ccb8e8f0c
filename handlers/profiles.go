package handlers

import (
	"net/http"

	"beyondylc/database"
	"beyondylc/middleware"
	"beyondylc/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func GetMyProfile(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		profile, err := db.GetProfile(ctx, middleware.UserID(c))
		if err != nil {
			respondError(c, err, "failed to get profile")
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func GetProfile(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
			return
		}

		ctx := c.Request.Context()
		profile, err := db.GetProfile(ctx, userID)
		if err != nil {
			respondError(c, err, "failed to get profile")
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

func UpsertMyProfile(db *database.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpsertProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		profile, err := db.UpsertProfile(ctx, middleware.UserID(c), req)
		if err != nil {
			logger.Error("UpsertProfile database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
