package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dialectic-dev/dialectic/pkg/models"
	"github.com/dialectic-dev/dialectic/pkg/registry"
	"github.com/dialectic-dev/dialectic/pkg/services"
)

// respondError maps registry and service errors to HTTP responses:
// not-found to 404, lifecycle conflicts to 409, validation to 400,
// everything else to 500.
func respondError(c *gin.Context, err error) {
	var validErr *registry.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:      "invalid session config",
			Violations: validErr.Violations,
		})
		return
	}

	switch {
	case errors.Is(err, registry.ErrSessionNotFound),
		errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, registry.ErrNotRunning),
		errors.Is(err, registry.ErrAlreadyPaused),
		errors.Is(err, registry.ErrCannotPauseStopped),
		errors.Is(err, registry.ErrCannotPauseCompleted),
		errors.Is(err, registry.ErrNotPaused),
		errors.Is(err, registry.ErrCannotResumeStopped),
		errors.Is(err, registry.ErrCannotResumeCompleted),
		errors.Is(err, registry.ErrAlreadyCompleted),
		errors.Is(err, registry.ErrAlreadyStopped):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("Unexpected API error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
	}
}
