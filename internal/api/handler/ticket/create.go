package ticket

import (
	"net/http"

	"kairos/turn-engine/internal/api/request"

	"github.com/gin-gonic/gin"
)

// Create godoc
// @Summary      Request a ticket
// @Description  Issue the next numbered ticket for a service to a client identified by document
// @Tags         Tickets
// @Accept       json
// @Produce      json
// @Param        request body request.CreateTicketRequest true "Ticket request body"
// @Success      201 {object} domain.Ticket "Created ticket"
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      404 {object} map[string]string "Service not found"
// @Failure      409 {object} map[string]string "Client already has a pending ticket"
// @Failure      503 {object} map[string]string "System unavailable"
// @Router       /v1/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req request.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.queueService.RequestTicket(c, req.ServiceId, req.Document, req.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}
