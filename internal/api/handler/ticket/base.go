package ticket

import (
	"context"
	"net/http"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type TicketHandler struct {
	queueService queueService
	subscriber   subscriber
}

type queueService interface {
	RequestTicket(ctx context.Context, serviceId int64, document, name string) (domain.Ticket, error)
	CancelTicket(ctx context.Context, serviceId int64, document string) (bool, error)
	AdvanceQueue(ctx context.Context, serviceId, staffUserId int64) (*domain.Ticket, error)
	GetSummary(ctx context.Context, serviceId int64) (domain.QueueSummary, error)
	GetPendingTicketForClient(ctx context.Context, document string, serviceId int64) (*domain.Ticket, error)
	GetRecentCalled(ctx context.Context, count int) ([]domain.Ticket, error)
	ListTickets(ctx context.Context, limit, offset int) ([]domain.Ticket, int64, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	HandledTotals(ctx context.Context) ([]domain.HandledCount, error)
}

type subscriber interface {
	Subscribe() (<-chan domain.QueueEvent, func())
}

func New(queueService queueService, subscriber subscriber) *TicketHandler {
	return &TicketHandler{
		queueService: queueService,
		subscriber:   subscriber,
	}
}

// fail maps engine errors onto HTTP statuses. Anything outside the taxonomy
// is a storage-side failure the caller may retry.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.PendingTicketExistsErr):
		c.JSON(http.StatusConflict, gin.H{"error": constant.PendingTicketExistsErrMsg})
	case errors.Is(err, constant.NotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.InvalidStateErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, constant.UnavailableErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": constant.UnavailableErr.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": constant.UnavailableErr.Error()})
	}
}
