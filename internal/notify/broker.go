package notify

import (
	"context"
	"encoding/json"
	"sync"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Broker bridges the local Hub over a single redis pub/sub channel so every
// process instance sees every queue change. One deployment-wide channel,
// service id carried in the payload; observers filter on their side.
type Broker struct {
	redisClient *redis.Client
	hub         *Hub
	logger      *logrus.Logger
	events      chan domain.QueueEvent
}

func NewBroker(redisClient *redis.Client, hub *Hub, logger *logrus.Logger) *Broker {
	return &Broker{
		redisClient: redisClient,
		hub:         hub,
		logger:      logger,
		events:      make(chan domain.QueueEvent, constant.EventBufSize),
	}
}

// Publish hands the event off to the background writer and returns
// immediately; mutating calls must never wait on observer delivery. A full
// queue drops the event, which best-effort delivery permits.
func (b *Broker) Publish(ev domain.QueueEvent) {
	select {
	case b.events <- ev:
	default:
		b.logger.Warnf("notify : event queue full, dropped %s for service %d", ev.Kind, ev.ServiceId)
	}
}

// Run drives the broker until ctx is cancelled: one writer goroutine drains
// the publish queue in order, one reader feeds redis messages into the Hub.
func (b *Broker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		b.writeLoop(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		b.readLoop(ctx)
	}()

	wg.Wait()
}

// writeLoop is deliberately single-goroutine: per-service event ordering
// must survive the trip through redis.
func (b *Broker) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.events:
			if err := b.publish(ctx, ev); err != nil {
				b.logger.Error(errors.Wrap(err, "notify : failed to publish event"))
			}
		}
	}
}

func (b *Broker) publish(ctx context.Context, ev domain.QueueEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	ctx, cancel := context.WithTimeout(ctx, constant.PublishTimeout)
	defer cancel()

	return b.redisClient.Publish(ctx, constant.QueueEventsChannel, payload).Err()
}

func (b *Broker) readLoop(ctx context.Context) {
	pubsub := b.redisClient.Subscribe(ctx, constant.QueueEventsChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			b.logger.Error(errors.Wrap(err, "notify : failed to close subscription"))
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var ev domain.QueueEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.logger.Error(errors.Wrap(err, "notify : failed to unmarshal event"))
				continue
			}
			b.hub.Dispatch(ev)
		}
	}
}
