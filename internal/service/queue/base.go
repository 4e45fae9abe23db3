package queue

import (
	"context"

	"kairos/turn-engine/internal/domain"

	"github.com/sirupsen/logrus"
)

// queueService is the turn queue engine: it owns ticket numbering, lifecycle
// transitions and queue summaries, and emits a queue-changed event on every
// mutation. Storage, identity and transport stay behind the interfaces below.
type queueService struct {
	ticketStore ticketStore
	clients     clientDirectory
	services    serviceCatalog
	counter     handledCounter
	notifier    notifier
	journal     ticketJournal
	logger      *logrus.Logger
}

type ticketStore interface {
	InsertNext(ctx context.Context, serviceId, clientId int64) (domain.Ticket, error)
	FindPendingByClient(ctx context.Context, serviceId, clientId int64) (*domain.Ticket, error)
	FindOldestPending(ctx context.Context, serviceId int64) (*domain.Ticket, error)
	UpdateStateFrom(ctx context.Context, ticketId int64, from, to domain.TicketState) (bool, error)
	CountPending(ctx context.Context, serviceId int64) (int, error)
	FindMaxNumber(ctx context.Context, serviceId int64) (int, error)
	FindLatestCalled(ctx context.Context, serviceId int64) (*domain.Ticket, error)
	FindRecentCalled(ctx context.Context, limit int) ([]domain.Ticket, error)
	List(ctx context.Context, limit, offset int) ([]domain.Ticket, int64, error)
}

type clientDirectory interface {
	FindByDocument(ctx context.Context, document string) (*domain.Client, error)
	CreateOrUpdate(ctx context.Context, document, name string) (domain.Client, error)
}

type serviceCatalog interface {
	Exists(ctx context.Context, serviceId int64) (bool, error)
	List(ctx context.Context) ([]domain.Service, error)
}

type handledCounter interface {
	Increment(ctx context.Context, userId, serviceId int64) error
	Totals(ctx context.Context) ([]domain.HandledCount, error)
}

type notifier interface {
	Publish(ev domain.QueueEvent)
}

type ticketJournal interface {
	Record(ctx context.Context, ev domain.QueueEvent)
}

func NewQueueService(
	ticketStore ticketStore,
	clients clientDirectory,
	services serviceCatalog,
	counter handledCounter,
	notifier notifier,
	journal ticketJournal,
	logger *logrus.Logger,
) *queueService {
	return &queueService{
		ticketStore: ticketStore,
		clients:     clients,
		services:    services,
		counter:     counter,
		notifier:    notifier,
		journal:     journal,
		logger:      logger,
	}
}
