package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Recent godoc
// @Summary      Recently called tickets
// @Description  Latest called tickets across all services, for the display board
// @Tags         Display
// @Produce      json
// @Param        count query int false "Number of tickets" default(20)
// @Success      200 {array} domain.Ticket
// @Router       /v1/display/recent [get]
func (h *TicketHandler) Recent(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "20"))

	tickets, err := h.queueService.GetRecentCalled(c, count)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}
