package domain

import "time"

type TicketState string

const (
	StatePending   TicketState = "pending"
	StateCalled    TicketState = "called"
	StateCancelled TicketState = "cancelled"
)

// Terminal reports whether no further transition is legal from s.
func (s TicketState) Terminal() bool {
	return s == StateCalled || s == StateCancelled
}

type Ticket struct {
	Id         int64       `json:"id"`
	ServiceId  int64       `json:"service_id"`
	ClientId   int64       `json:"client_id"`
	ClientName string      `json:"client_name,omitempty"`
	Number     int         `json:"number"`
	State      TicketState `json:"state"`
	CreatedAt  time.Time   `json:"created_at"`
	CalledAt   *time.Time  `json:"called_at,omitempty"`
}

// QueueSummary is derived on demand and never persisted. CurrentNumber is
// the highest-numbered called ticket, 0 when nothing has been called yet;
// LastNumber is 0 when the service has never issued a ticket.
type QueueSummary struct {
	ServiceId     int64 `json:"service_id"`
	CurrentNumber int   `json:"current_number"`
	LastNumber    int   `json:"last_number"`
	PendingCount  int   `json:"pending_count"`
}
