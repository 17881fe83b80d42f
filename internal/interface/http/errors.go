package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andresmx/tasktrack/internal/application"
	"github.com/andresmx/tasktrack/internal/domain/repository"
	"github.com/andresmx/tasktrack/pkg/helpers"
	"github.com/andresmx/tasktrack/pkg/response"
)

// writeServiceError maps service errors onto the HTTP taxonomy. Unrecognized
// errors become a generic 500; their detail is logged for operators and never
// echoed to the client.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	if ve, ok := application.AsValidation(err); ok {
		response.Error(c, http.StatusBadRequest, "validation failed", ve.Reasons)
		return
	}
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "email already registered", []string{"use another email or log in instead"})
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "task not found", nil)
	default:
		if logger != nil {
			helpers.LogError(logger, "unhandled service error", err, logrus.Fields{"path": c.FullPath()})
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
