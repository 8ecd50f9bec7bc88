package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedPayload marks events that can never be processed and belong in a dead letter queue.
var ErrMalformedPayload = errors.New("malformed payload")

type Event struct {
	Event         string      `json:"event"`   // e.g. "item.created"
	Version       string      `json:"version"` // e.g. "v1"
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
	TraceID       string      `json:"traceId"`
	CorrelationID string      `json:"correlationId"`
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewEvent(eventName, version string, payload interface{}, headers Headers) *Event {
	return &Event{
		Event:         eventName,
		Version:       version,
		Timestamp:     time.Now().UTC(),
		Payload:       payload,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}
}

// NewHeaders returns headers with fresh trace and correlation ids.
func NewHeaders(service string) Headers {
	return Headers{
		TraceID:       uuid.New().String(),
		CorrelationID: uuid.New().String(),
		Service:       service,
	}
}

type traceKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceKey{}).(string)
	return traceID
}

// HeadersFromContext is NewHeaders with the trace id of ctx, when it has one.
func HeadersFromContext(ctx context.Context, service string) Headers {
	headers := NewHeaders(service)
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		headers.TraceID = traceID
	}
	return headers
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}

// DecodePayload re-decodes the generic payload of a received event into target.
func (e *Event) DecodePayload(target interface{}) error {
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("%w: marshal failed: %v", ErrMalformedPayload, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: unmarshal failed: %v", ErrMalformedPayload, err)
	}
	return nil
}
