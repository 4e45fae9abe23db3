package ticket

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 30 * time.Second

// Events godoc
// @Summary      Queue event stream
// @Description  Server-sent events; one "queue" event per queue change, heartbeats in between
// @Tags         Display
// @Produce      text/event-stream
// @Router       /v1/events [get]
func (h *TicketHandler) Events(c *gin.Context) {
	ch, cancel := h.subscriber.Subscribe()
	defer cancel()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("queue", ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
