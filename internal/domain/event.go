package domain

import "time"

// QueueEvent is the fan-out payload pushed to every observer when a
// service's queue changes. Delivery is best-effort, at-most-once.
type QueueEvent struct {
	ServiceId int64     `json:"service_id"`
	Kind      EventKind `json:"kind"`
	Number    int       `json:"number"`
	EmittedAt time.Time `json:"emitted_at"`
}

type EventKind string

const (
	EventTicketCreated   EventKind = "ticket_created"
	EventTicketCalled    EventKind = "ticket_called"
	EventTicketCancelled EventKind = "ticket_cancelled"
)

// JournalMessage is an audit record headed for kafka; Attempts tracks write
// retries so the dead-letter table knows how hard we tried.
type JournalMessage struct {
	Key      string
	Payload  []byte
	Topic    string
	Attempts int
}
