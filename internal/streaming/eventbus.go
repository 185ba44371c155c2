// Package streaming distributes dataset-replacement events to in-process
// subscribers so API consumers can react when a new snapshot lands.
package streaming

import (
	"fmt"
	"sync"
	"time"

	"consent-theater/pkg/logger"
)

// DatasetEvent describes one snapshot replacement.
type DatasetEvent struct {
	Generation    uint64    `json:"generation"`
	ScanID        string    `json:"scan_id"`
	TotalApps     int       `json:"total_apps"`
	TotalTrackers int       `json:"total_trackers"`
	LoadedAt      time.Time `json:"loaded_at"`
}

// EventBus fans dataset events out to subscribers. Slow subscribers drop
// events rather than block the publisher.
type EventBus struct {
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[string]chan *DatasetEvent
	nextID      int
}

// NewEventBus creates a new event bus.
func NewEventBus(log *logger.Logger) *EventBus {
	return &EventBus{
		logger:      log.WithComponent("event-bus"),
		subscribers: make(map[string]chan *DatasetEvent),
	}
}

// Publish broadcasts a dataset event to all subscribers.
func (eb *EventBus) Publish(event *DatasetEvent) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for id, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			eb.logger.Debug().Str("subscriber", id).Msg("subscriber channel full, dropping event")
		}
	}
}

// Subscribe creates a new subscription and returns the event channel plus an
// unsubscribe function.
func (eb *EventBus) Subscribe() (<-chan *DatasetEvent, func()) {
	eb.mu.Lock()
	eb.nextID++
	id := fmt.Sprintf("sub-%d", eb.nextID)
	ch := make(chan *DatasetEvent, 16)
	eb.subscribers[id] = ch
	eb.mu.Unlock()

	eb.logger.Debug().Str("subscriber_id", id).Msg("new subscriber")

	unsubscribe := func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		if _, ok := eb.subscribers[id]; ok {
			close(ch)
			delete(eb.subscribers, id)
		}
	}

	return ch, unsubscribe
}

// SubscriberCount returns the number of active subscribers.
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// Close closes the event bus and all subscriber channels.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for id, ch := range eb.subscribers {
		close(ch)
		delete(eb.subscribers, id)
	}
}
