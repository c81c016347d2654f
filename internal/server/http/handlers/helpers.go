package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// PathID parses the :id path parameter.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeError maps domain sentinels onto HTTP statuses. Validation failures
// are 422, the return ceiling is a conflict, everything unknown is a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrItemNotFound),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrNameRequired),
		errors.Is(err, domainErrors.ErrLabelRequired),
		errors.Is(err, domainErrors.ErrInvalidPrice),
		errors.Is(err, domainErrors.ErrClientRequired),
		errors.Is(err, domainErrors.ErrNoConsignItems):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrExceedsOutstanding),
		errors.Is(err, domainErrors.ErrOrderNotDeletable),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
