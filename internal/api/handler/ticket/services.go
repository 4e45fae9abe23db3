package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services godoc
// @Summary      List services
// @Description  Services the kiosk can issue tickets for
// @Tags         Services
// @Produce      json
// @Success      200 {array} domain.Service
// @Router       /v1/services [get]
func (h *TicketHandler) Services(c *gin.Context) {
	services, err := h.queueService.ListServices(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// Handled godoc
// @Summary      Handled-ticket totals
// @Description  Per staff member, per service tally of called tickets
// @Tags         Staff
// @Produce      json
// @Success      200 {array} domain.HandledCount
// @Router       /v1/staff/handled [get]
// @Security     ApiKeyAuth
func (h *TicketHandler) Handled(c *gin.Context) {
	totals, err := h.queueService.HandledTotals(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}
