package events

import (
	"context"

	"go.uber.org/zap"
)

// Publisher defines the interface for publishing domain events
type Publisher interface {
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error
	Close() error
}

// Emit publishes a v1 catalog event and only logs failures. A nil publisher disables events.
func Emit(ctx context.Context, publisher Publisher, service, name string, payload interface{}) {
	if publisher == nil {
		return
	}

	headers := HeadersFromContext(ctx, service)
	event := NewEvent(name, EventVersionV1, payload, headers)

	if err := publisher.Publish(ctx, CatalogExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish event",
			zap.String("event", name),
			zap.String("traceId", headers.TraceID),
			zap.Error(err),
		)
	}
}
