package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/events"
)

func saleEvent(saleID string) domain.SaleEvent {
	return domain.SaleEvent{
		Type:       domain.SaleEventCreated,
		Sale:       domain.Sale{SaleID: saleID},
		OccurredAt: time.Now(),
	}
}

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := events.NewHub()

	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(saleEvent("sale-1"))

	select {
	case event := <-ch:
		assert.Equal(t, "sale-1", event.Sale.SaleID)
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestHubReplaysRecentEventsToNewSubscribers(t *testing.T) {
	hub := events.NewHub()

	hub.Publish(saleEvent("sale-1"))
	hub.Publish(saleEvent("sale-2"))

	ch, cancel := hub.Subscribe()
	defer cancel()

	first := <-ch
	second := <-ch
	assert.Equal(t, "sale-1", first.Sale.SaleID)
	assert.Equal(t, "sale-2", second.Sale.SaleID)
}

func TestHubCancelRemovesSubscriber(t *testing.T) {
	hub := events.NewHub()

	_, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Cancelling twice is harmless.
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubNeverBlocksPublishers(t *testing.T) {
	hub := events.NewHub()

	_, cancel := hub.Subscribe()
	defer cancel()

	// Far more events than any buffer holds; Publish must not block even
	// though nobody is draining the channel.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(saleEvent("flood"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
