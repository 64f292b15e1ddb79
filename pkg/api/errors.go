package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parleyhq/parley/pkg/services"
)

// writeServiceError maps service-layer errors to HTTP responses. Every
// handler funnels errors through here so the error shape stays uniform.
func writeServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "discussion not found"})
	case errors.Is(err, services.ErrTerminated):
		c.JSON(http.StatusConflict, gin.H{"error": "discussion already terminated"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
