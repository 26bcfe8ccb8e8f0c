package handlers

import (
	"errors"
	"net/http"

	"beyondylc/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps application errors to HTTP statuses. Backend failures
// never propagate as faults; the caller always gets a JSON error body.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotCreator):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyMember),
		errors.Is(err, apperrors.ErrNotMember),
		errors.Is(err, apperrors.ErrProjectFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConfirmRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
