package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Lifecycle topics published by the ingestion pipeline.
const (
	TopicDocumentIngested = "second-brain.document.ingested"
	TopicDocumentFailed   = "second-brain.document.failed"
)

// Event is the payload carried on every topic.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent wraps an arbitrary payload into an Event with a fresh id.
func NewEvent(payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal event payload: %w", err)
	}
	return Event{ID: uuid.NewString(), Payload: data}, nil
}

// EventBus publishes lifecycle events. Publishing is advisory: callers
// decide whether a publish failure is fatal (it never is for the
// ingestion pipeline).
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}
