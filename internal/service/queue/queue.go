package queue

import (
	"context"
	"time"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/pkg/errors"
)

// RequestTicket issues the next numbered ticket for the service to the
// client identified by document, creating or renaming the client record as
// needed. At most one pending ticket per client per service.
func (qs *queueService) RequestTicket(ctx context.Context, serviceId int64, document, name string) (domain.Ticket, error) {
	exists, err := qs.services.Exists(ctx, serviceId)
	if err != nil {
		return domain.Ticket{}, errors.Wrap(err, "queue : failed to check service")
	}
	if !exists {
		return domain.Ticket{}, errors.Wrapf(constant.NotFoundErr, "service %d", serviceId)
	}

	client, err := qs.clients.CreateOrUpdate(ctx, document, name)
	if err != nil {
		return domain.Ticket{}, errors.Wrap(err, "queue : failed to resolve client")
	}

	pending, err := qs.ticketStore.FindPendingByClient(ctx, serviceId, client.Id)
	if err != nil {
		return domain.Ticket{}, errors.Wrap(err, "queue : failed to check pending ticket")
	}
	if pending != nil {
		return domain.Ticket{}, constant.PendingTicketExistsErr
	}

	ticket, err := qs.createWithFreshNumber(ctx, serviceId, client.Id)
	if err != nil {
		return domain.Ticket{}, err
	}
	ticket.ClientName = client.Name

	qs.emit(ctx, domain.EventTicketCreated, serviceId, ticket.Number)
	return ticket, nil
}

// CancelTicket cancels the client's pending ticket for the service. A
// missing client or ticket is a no-op, not an error; the boolean tells the
// caller whether anything changed.
func (qs *queueService) CancelTicket(ctx context.Context, serviceId int64, document string) (bool, error) {
	client, err := qs.clients.FindByDocument(ctx, document)
	if err != nil {
		return false, errors.Wrap(err, "queue : failed to find client")
	}
	if client == nil {
		return false, nil
	}

	pending, err := qs.ticketStore.FindPendingByClient(ctx, serviceId, client.Id)
	if err != nil {
		return false, errors.Wrap(err, "queue : failed to find pending ticket")
	}
	if pending == nil {
		return false, nil
	}

	ok, err := qs.ticketStore.UpdateStateFrom(ctx, pending.Id, domain.StatePending, domain.StateCancelled)
	if err != nil {
		return false, errors.Wrap(err, "queue : failed to cancel ticket")
	}
	if !ok {
		// someone called or cancelled it first
		return false, nil
	}

	qs.emit(ctx, domain.EventTicketCancelled, serviceId, pending.Number)
	return true, nil
}

// AdvanceQueue calls the lowest-numbered pending ticket for the service and
// returns it, or nil when nothing is pending. Two staff members racing on
// the same service are resolved by the compare-and-swap transition: the
// loser re-selects, so no ticket is ever called twice or out of order.
func (qs *queueService) AdvanceQueue(ctx context.Context, serviceId, staffUserId int64) (*domain.Ticket, error) {
	exists, err := qs.services.Exists(ctx, serviceId)
	if err != nil {
		return nil, errors.Wrap(err, "queue : failed to check service")
	}
	if !exists {
		return nil, errors.Wrapf(constant.NotFoundErr, "service %d", serviceId)
	}

	for attempt := 0; attempt < constant.AdvanceRetryLimit; attempt++ {
		next, err := qs.ticketStore.FindOldestPending(ctx, serviceId)
		if err != nil {
			return nil, errors.Wrap(err, "queue : failed to select next ticket")
		}
		if next == nil {
			return nil, nil
		}

		ok, err := qs.ticketStore.UpdateStateFrom(ctx, next.Id, domain.StatePending, domain.StateCalled)
		if err != nil {
			return nil, errors.Wrap(err, "queue : failed to call ticket")
		}
		if !ok {
			continue
		}

		// The transition has committed; the per-staff tally must not undo it.
		if err := qs.counter.Increment(ctx, staffUserId, serviceId); err != nil {
			qs.logger.Warnf("queue : handled counter increment failed for user %d service %d: %v", staffUserId, serviceId, err)
		}

		now := time.Now().UTC()
		next.State = domain.StateCalled
		next.CalledAt = &now

		qs.emit(ctx, domain.EventTicketCalled, serviceId, next.Number)
		return next, nil
	}

	return nil, errors.Wrap(constant.UnavailableErr, "queue : advance retries exhausted")
}

// GetSummary computes the public queue snapshot fresh from stored state.
func (qs *queueService) GetSummary(ctx context.Context, serviceId int64) (domain.QueueSummary, error) {
	exists, err := qs.services.Exists(ctx, serviceId)
	if err != nil {
		return domain.QueueSummary{}, errors.Wrap(err, "queue : failed to check service")
	}
	if !exists {
		return domain.QueueSummary{}, errors.Wrapf(constant.NotFoundErr, "service %d", serviceId)
	}

	last, err := qs.ticketStore.FindMaxNumber(ctx, serviceId)
	if err != nil {
		return domain.QueueSummary{}, errors.Wrap(err, "queue : failed to read last number")
	}

	pendingCount, err := qs.ticketStore.CountPending(ctx, serviceId)
	if err != nil {
		return domain.QueueSummary{}, errors.Wrap(err, "queue : failed to count pending")
	}

	current := 0
	latest, err := qs.ticketStore.FindLatestCalled(ctx, serviceId)
	if err != nil {
		return domain.QueueSummary{}, errors.Wrap(err, "queue : failed to read current number")
	}
	if latest != nil {
		current = latest.Number
	}

	return domain.QueueSummary{
		ServiceId:     serviceId,
		CurrentNumber: current,
		LastNumber:    last,
		PendingCount:  pendingCount,
	}, nil
}

// GetPendingTicketForClient is the public status lookup; nil means the
// client has no pending ticket for the service.
func (qs *queueService) GetPendingTicketForClient(ctx context.Context, document string, serviceId int64) (*domain.Ticket, error) {
	client, err := qs.clients.FindByDocument(ctx, document)
	if err != nil {
		return nil, errors.Wrap(err, "queue : failed to find client")
	}
	if client == nil {
		return nil, nil
	}

	ticket, err := qs.ticketStore.FindPendingByClient(ctx, serviceId, client.Id)
	if err != nil {
		return nil, errors.Wrap(err, "queue : failed to find pending ticket")
	}
	if ticket != nil {
		ticket.ClientName = client.Name
	}

	return ticket, nil
}

// GetRecentCalled feeds the public display board.
func (qs *queueService) GetRecentCalled(ctx context.Context, count int) ([]domain.Ticket, error) {
	if count <= 0 {
		count = constant.RecentCalledDefault
	}
	if count > constant.RecentCalledMax {
		count = constant.RecentCalledMax
	}

	return qs.ticketStore.FindRecentCalled(ctx, count)
}

func (qs *queueService) ListTickets(ctx context.Context, limit, offset int) ([]domain.Ticket, int64, error) {
	return qs.ticketStore.List(ctx, limit, offset)
}

func (qs *queueService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return qs.services.List(ctx)
}

func (qs *queueService) HandledTotals(ctx context.Context) ([]domain.HandledCount, error) {
	return qs.counter.Totals(ctx)
}

// emit pushes the queue-changed event to live observers and the audit
// journal. Both paths are fire-and-forget relative to the mutation.
func (qs *queueService) emit(ctx context.Context, kind domain.EventKind, serviceId int64, number int) {
	ev := domain.QueueEvent{
		ServiceId: serviceId,
		Kind:      kind,
		Number:    number,
		EmittedAt: time.Now().UTC(),
	}
	qs.notifier.Publish(ev)
	qs.journal.Record(ctx, ev)
}
