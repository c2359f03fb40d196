package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JackFaiSeT/purple-school-airbnb/internal/models"
)

// writeError maps domain errors onto the HTTP contract: uniqueness and
// booking violations are 409, missing records 404, malformed ids and
// invalid field values 400. Everything else is an opaque 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRoomAlreadyExists), errors.Is(err, models.ErrRoomBooked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrRoomNotFound), errors.Is(err, models.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
	case errors.Is(err, models.ErrInvalidRoomNumber), errors.Is(err, models.ErrInvalidRoomType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDate accepts either a full RFC3339 timestamp or a bare calendar
// day like "2025-03-01".
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
