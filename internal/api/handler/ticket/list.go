package ticket

import (
	"net/http"

	"kairos/turn-engine/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary      List tickets
// @Description  Paginated ticket listing for staff, newest first
// @Tags         Tickets
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Number of items per page" default(10)
// @Success      200 {object} map[string]interface{} "Tickets with pagination metadata"
// @Failure      503 {object} map[string]string "System unavailable"
// @Router       /v1/tickets [get]
// @Security     ApiKeyAuth
func (h *TicketHandler) List(c *gin.Context) {
	pagination := paginator.New(c)

	tickets, total, err := h.queueService.ListTickets(c, pagination.Size, pagination.From)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    tickets,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}
