package ticket

import (
	"net/http"
	"strconv"

	"kairos/turn-engine/internal/constant"

	"github.com/gin-gonic/gin"
)

// Advance godoc
// @Summary      Advance the queue
// @Description  Call the lowest-numbered pending ticket for a service and return it
// @Tags         Tickets
// @Produce      json
// @Param        id path int true "Service id"
// @Success      200 {object} domain.Ticket "The ticket that was just called, or an empty-queue message"
// @Failure      400 {object} map[string]string "Invalid service id"
// @Failure      404 {object} map[string]string "Service not found"
// @Failure      503 {object} map[string]string "System unavailable"
// @Router       /v1/services/{id}/advance [post]
// @Security     ApiKeyAuth
func (h *TicketHandler) Advance(c *gin.Context) {
	serviceId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	staffUserId := c.MustGet(constant.UserIdKey).(int64)

	called, err := h.queueService.AdvanceQueue(c, serviceId, staffUserId)
	if err != nil {
		fail(c, err)
		return
	}

	if called == nil {
		// empty queue is the normal case, not a failure
		c.JSON(http.StatusOK, gin.H{"message": "no pending tickets for this service"})
		return
	}

	c.JSON(http.StatusOK, called)
}
