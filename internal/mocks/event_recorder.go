package mocks

import (
	"context"
	"sync"

	"github.com/inspiro-ai/inspiro-api/internal/events"
)

// EventRecorder implements events.EventHandler and keeps every event it
// receives. It is safe for concurrent use.
type EventRecorder struct {
	mu     sync.Mutex
	events []*events.ContentEvent
}

var _ events.EventHandler = (*EventRecorder)(nil)

// HandleEvent implements events.EventHandler.
func (r *EventRecorder) HandleEvent(_ context.Context, event *events.ContentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the recorded events in arrival order.
func (r *EventRecorder) Events() []*events.ContentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*events.ContentEvent(nil), r.events...)
}

// Types returns the recorded event types in arrival order.
func (r *EventRecorder) Types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}
