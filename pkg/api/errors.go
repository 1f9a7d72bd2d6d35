package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quarryhq/quarry/pkg/services"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// mapServiceError converts service layer errors to an HTTP status and a
// client-safe message. Unexpected errors are logged and collapsed to a
// generic 500 so internals never leak to clients.
func mapServiceError(err error) (int, string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrAlreadyFinalized):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrConcurrentModification):
		return http.StatusConflict, err.Error()
	default:
		slog.Error("Unexpected service error", "error", err)
		return http.StatusInternalServerError, "internal server error"
	}
}

// serviceError writes the mapped error response and aborts the request.
func serviceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
