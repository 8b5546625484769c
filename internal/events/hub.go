// Package events fans sale changes out to live dashboard subscribers.
package events

import (
	"sync"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
)

const (
	subscriberBuffer = 16
	recentBuffer     = 32
)

// Hub is an in-memory publish/subscribe broker for sale events. Slow
// subscribers lose events rather than block publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan domain.SaleEvent]struct{}

	// recent is a ring of the latest events, replayed to new subscribers
	// so a freshly opened dashboard is not empty.
	recent []domain.SaleEvent
}

var _ portssvc.SaleEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan domain.SaleEvent]struct{}),
	}
}

// Publish broadcasts the event to every subscriber. Never blocks.
func (h *Hub) Publish(event domain.SaleEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, event)
	if len(h.recent) > recentBuffer {
		h.recent = h.recent[len(h.recent)-recentBuffer:]
	}

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is not keeping up; drop the event for them.
		}
	}
}

// Subscribe registers a new listener and replays recent events into its
// buffer. The returned cancel func must be called to release the channel.
func (h *Hub) Subscribe() (<-chan domain.SaleEvent, func()) {
	ch := make(chan domain.SaleEvent, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	replay := make([]domain.SaleEvent, len(h.recent))
	copy(replay, h.recent)
	h.mu.Unlock()

	for _, event := range replay {
		select {
		case ch <- event:
		default:
		}
	}

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// SubscriberCount reports the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
