package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/services"
)

// handleServiceError translates the service error taxonomy into HTTP
// responses. Anything outside the taxonomy is an infrastructure failure
// and surfaces as a 500 without leaking its detail.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrNotReady):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
	}
}

// parseID reads the :id path parameter as an entity identifier. A
// malformed value is reported as a 400 and ok is false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseOptionalQuery reads an optional numeric query filter; absence
// yields zero, a malformed value yields a 400 and ok is false.
func parseOptionalQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}
