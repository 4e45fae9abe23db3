package queue

import (
	"context"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/pkg/errors"
)

// createWithFreshNumber is the sequencer: the store assigns max(number)+1 and
// inserts in one transaction, and uniqueness on (service_id, number) turns a
// concurrent assignment into ConflictErr. The loser recomputes and retries a
// bounded number of times, so two requests for the same service can never
// share a number while requests for different services never contend.
//
// A duplicate can also mean the client raced itself past the pending check;
// that case re-surfaces as PendingTicketExistsErr instead of a retry.
func (qs *queueService) createWithFreshNumber(ctx context.Context, serviceId, clientId int64) (domain.Ticket, error) {
	for attempt := 0; attempt < constant.SequenceRetryLimit; attempt++ {
		ticket, err := qs.ticketStore.InsertNext(ctx, serviceId, clientId)
		if err == nil {
			return ticket, nil
		}
		if !errors.Is(err, constant.ConflictErr) {
			return domain.Ticket{}, errors.Wrap(err, "queue : failed to insert ticket")
		}

		pending, perr := qs.ticketStore.FindPendingByClient(ctx, serviceId, clientId)
		if perr != nil {
			return domain.Ticket{}, errors.Wrap(perr, "queue : failed to re-check pending ticket")
		}
		if pending != nil {
			return domain.Ticket{}, constant.PendingTicketExistsErr
		}

		qs.logger.Warnf("queue : ticket number race on service %d, retrying (attempt %d)", serviceId, attempt+1)
	}

	return domain.Ticket{}, errors.Wrap(constant.UnavailableErr, "queue : sequencer retries exhausted")
}
