package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"eureka/catalog"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func parseProjectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return 0, false
	}
	return id, true
}

// respondError maps catalog errors to HTTP status codes.
func respondError(c *gin.Context, op string, err error) {
	var validationErr *catalog.ValidationError

	switch {
	case errors.Is(err, catalog.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, catalog.ErrCommentParentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "parent comment not found"})
	case errors.Is(err, catalog.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
	case errors.Is(err, catalog.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		log.Printf("%s error: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op})
	}
}
