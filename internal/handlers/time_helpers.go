package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/middleware"
	"github.com/BruksfildServices01/slot-booker/internal/timezone"
)

// windowFromQuery accepts ?start=&end= (RFC 3339) or ?date=YYYY-MM-DD.
// A missing or malformed window is an invalid_range.
func windowFromQuery(c *gin.Context, tz string) (time.Time, time.Time, error) {
	if date := c.Query("date"); date != "" {
		return timezone.DayWindow(date, tz)
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	start, err := timezone.ParseInstant(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timezone.ParseInstant(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "invalid id.")
		return uuid.Nil, false
	}
	return id, true
}

func actor(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
