package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	UserIdKey = "user_id"

	// QueueEventsChannel is the single redis pub/sub channel carrying
	// queue-changed events; observers filter by service_id in the payload.
	QueueEventsChannel = "kairos:queue.events"

	KafkaTopic        = "queue.ticket.events"
	KafkaProducerAcks = kafka.RequireAll
	KafkaWriteTimeout = 5 * time.Second
	KafkaWriteRetries = 3
	KafkaRetryBackoff = 500 * time.Millisecond

	// JournalBufSize bounds the in-memory audit channel; when full, events
	// spill synchronously to the postgres dead-letter table.
	JournalBufSize     = 10000
	JournalWorkerCount = 4

	// SequenceRetryLimit bounds the optimistic retry loop around ticket
	// number assignment before surfacing UnavailableErr.
	SequenceRetryLimit = 5

	// AdvanceRetryLimit bounds the select-then-transition loop when two
	// staff members race on the same service.
	AdvanceRetryLimit = 5

	EventBufSize      = 1024 // broker publish queue
	SubscriberBufSize = 16   // per-observer fan-out channel

	PublishTimeout = 2 * time.Second
	DBTxTimeout    = 2 * time.Second // keep transactions short

	RecentCalledDefault = 20
	RecentCalledMax     = 100
)
