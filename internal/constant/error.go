package constant

import "github.com/pkg/errors"

const PendingTicketExistsErrMsg = "client already has a pending ticket for this service"

var (
	// NotFoundErr covers absent services, tickets and clients.
	NotFoundErr = errors.New("not found")

	// ConflictErr marks a write that lost a uniqueness race; the sequencer
	// retries these internally before giving up with UnavailableErr.
	ConflictErr = errors.New("conflict")

	// PendingTicketExistsErr is a business rule, not a transient failure:
	// it is surfaced to the caller verbatim and never retried.
	PendingTicketExistsErr = errors.New(PendingTicketExistsErrMsg)

	// InvalidStateErr marks an attempted transition out of a terminal state.
	InvalidStateErr = errors.New("ticket is not in a transitionable state")

	// UnavailableErr is returned once internal retries are exhausted; the
	// caller may retry after re-querying state.
	UnavailableErr = errors.New("system unavailable, retry")
)
