package notify

import (
	"sync"

	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"
)

// Hub tracks connected observers (staff dashboards, public displays, waiting
// clients) and fans queue-changed events out to them. Delivery is
// at-most-once: a slow observer's buffer overflowing drops the event rather
// than blocking the dispatcher, and observers re-fetch state on reconnect.
type Hub struct {
	mu          sync.RWMutex
	nextId      int
	subscribers map[int]chan domain.QueueEvent
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int]chan domain.QueueEvent),
	}
}

// Subscribe registers an observer. The returned cancel func must be called
// on disconnect; it is safe to call more than once.
func (h *Hub) Subscribe() (<-chan domain.QueueEvent, func()) {
	ch := make(chan domain.QueueEvent, constant.SubscriberBufSize)

	h.mu.Lock()
	id := h.nextId
	h.nextId++
	h.subscribers[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Dispatch delivers the event to every current subscriber without blocking.
// Each subscriber has its own buffered channel, so per-observer ordering
// follows dispatch order.
func (h *Hub) Dispatch(ev domain.QueueEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
			// observer too slow; it will re-sync on its next fetch
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
