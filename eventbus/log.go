package eventbus

import (
	"context"

	"second-brain/internal/logger"
)

// LogEventBus writes events to the application log instead of a broker.
// Used when no Kafka brokers are configured.
type LogEventBus struct{}

func NewLogEventBus() *LogEventBus {
	return &LogEventBus{}
}

func (l *LogEventBus) Publish(_ context.Context, topic string, event Event) error {
	logger.InfoWithFields("event published", logger.Fields{
		"topic":    topic,
		"event_id": event.ID,
		"payload":  string(event.Payload),
	})
	return nil
}

func (l *LogEventBus) Close() {}
