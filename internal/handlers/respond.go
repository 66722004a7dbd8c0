package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bmahler/estate-portal/api/internal/middleware"
)

// Envelope is the JSON wrapper used by every API response. Data, Error,
// Message, Count and Schema are populated per endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Schema  interface{} `json:"schema,omitempty"`
}

// respondNotFound sends a 404 error envelope and logs a warning.
func respondNotFound(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Resource not found", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Error:   message,
	})
}

// respondBadRequest sends a 400 error envelope and logs a warning.
func respondBadRequest(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Bad request", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   message,
	})
}

// respondInternalError sends a 500 error envelope. The underlying error is
// logged with full context and its message is surfaced to the caller (the
// store's message is part of the API contract).
func respondInternalError(c *gin.Context, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   err.Error(),
	})
}

// bindingErrorMessage flattens validator errors from request binding into
// one human-readable message, e.g. "name exceeds maximum length of 255".
func bindingErrorMessage(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "max":
			parts = append(parts, field+" exceeds maximum length of "+fe.Param())
		default:
			parts = append(parts, field+" failed validation: "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
