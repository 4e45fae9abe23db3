package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Summary godoc
// @Summary      Queue summary
// @Description  Current called number, last issued number and pending count for a service
// @Tags         Tickets
// @Produce      json
// @Param        id path int true "Service id"
// @Success      200 {object} domain.QueueSummary
// @Failure      400 {object} map[string]string "Invalid service id"
// @Failure      404 {object} map[string]string "Service not found"
// @Router       /v1/services/{id}/summary [get]
func (h *TicketHandler) Summary(c *gin.Context) {
	serviceId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	summary, err := h.queueService.GetSummary(c, serviceId)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
