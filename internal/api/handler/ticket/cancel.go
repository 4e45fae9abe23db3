package ticket

import (
	"net/http"

	"kairos/turn-engine/internal/api/request"

	"github.com/gin-gonic/gin"
)

// Cancel godoc
// @Summary      Cancel a pending ticket
// @Description  Cancel the client's pending ticket for a service; no-op when nothing is pending
// @Tags         Tickets
// @Accept       json
// @Produce      json
// @Param        request body request.CancelTicketRequest true "Cancel request body"
// @Success      200 {object} map[string]bool "cancelled flag"
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      503 {object} map[string]string "System unavailable"
// @Router       /v1/tickets/cancel [post]
func (h *TicketHandler) Cancel(c *gin.Context) {
	var req request.CancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cancelled, err := h.queueService.CancelTicket(c, req.ServiceId, req.Document)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}
