package ginserver

import (
	"context"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"rentdesk/internal/app/services"
)

type CalendarHandler struct {
	Service      *services.CalendarService
	FetchTimeout time.Duration
}

// Calendar answers the day-keyed status index for one unit. The fetch runs
// under a timeout so a hung store surfaces as an error instead of an
// indefinite loading state.
func (h CalendarHandler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()
	if h.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.FetchTimeout)
		defer cancel()
	}
	result, err := h.Service.Fetch(ctx, c.Param("id"))
	if err != nil {
		if ctx.Err() != nil {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "calendar fetch timed out"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CalendarHTTP = CalendarHandler{}
