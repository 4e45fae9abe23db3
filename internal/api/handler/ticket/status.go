package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Status godoc
// @Summary      Pending ticket lookup
// @Description  The client's pending ticket for a service, or null when none exists
// @Tags         Tickets
// @Produce      json
// @Param        document query string true "Client document"
// @Param        service_id query int true "Service id"
// @Success      200 {object} domain.Ticket
// @Failure      400 {object} map[string]string "Invalid parameters"
// @Router       /v1/tickets/status [get]
func (h *TicketHandler) Status(c *gin.Context) {
	document := c.Query("document")
	serviceId, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if document == "" || err != nil || serviceId <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parameters"})
		return
	}

	ticket, err := h.queueService.GetPendingTicketForClient(c, document, serviceId)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
