package journal

import (
	"context"
	"encoding/json"
	"time"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Journal streams every ticket state change to kafka for auditing. It is
// strictly best-effort: a mutation commits whether or not its audit record
// makes it out, and records that exhaust their retries land in the postgres
// dead-letter table instead.
type Journal struct {
	writer        messageWriter
	dlqRepository dlqRepository
	logger        *logrus.Logger
	work          chan domain.JournalMessage
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type dlqRepository interface {
	InsertDLQ(ctx context.Context, jm domain.JournalMessage) error
}

func New(writer messageWriter, dlqRepo dlqRepository, logger *logrus.Logger) *Journal {
	return &Journal{
		writer:        writer,
		dlqRepository: dlqRepo,
		logger:        logger,
		work:          make(chan domain.JournalMessage, constant.JournalBufSize),
	}
}

type record struct {
	Id string `json:"id"`
	domain.QueueEvent
}

// Record enqueues the event for the background producers without blocking
// the mutating call. When the channel is full the record goes straight to
// the dead-letter table so nothing is silently lost.
func (j *Journal) Record(ctx context.Context, ev domain.QueueEvent) {
	payload, err := json.Marshal(record{Id: uuid.NewString(), QueueEvent: ev})
	if err != nil {
		j.logger.Error(errors.Wrap(err, "journal : failed to marshal event"))
		return
	}

	jm := domain.JournalMessage{
		Key:      uuid.NewString(),
		Payload:  payload,
		Topic:    constant.KafkaTopic,
		Attempts: 0,
	}

	select {
	case j.work <- jm:
	default:
		if err := j.dlqRepository.InsertDLQ(ctx, jm); err != nil {
			j.logger.Error(errors.Wrap(err, "journal : dlq insert failed with full work queue"))
		}
	}
}

// Produce runs in its own goroutine and drains the work channel until Close.
func (j *Journal) Produce(workerID int) {
	for jm := range j.work {
		success := false
		for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
			err := j.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(jm.Key),
				Value: jm.Payload,
				Time:  time.Now(),
			})
			cancel()
			if err == nil {
				success = true
				break
			}
			j.logger.Warnf("journal worker %d: write attempt %d failed: %v", workerID, attempt+1, err)
			time.Sleep(constant.KafkaRetryBackoff * time.Duration(attempt+1))
		}
		if !success {
			jm.Attempts += constant.KafkaWriteRetries
			if err := j.dlqRepository.InsertDLQ(context.Background(), jm); err != nil {
				j.logger.Errorf("journal worker %d: failed to insert dlq: %v", workerID, err)
			}
		}
	}
}

// Close stops the producers once the channel drains.
func (j *Journal) Close() {
	close(j.work)
}
