// pkg/ledger/ledger.go
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrConcurrencyConflict = errors.New("concurrency conflict: version mismatch")
	ErrInvalidVersion      = errors.New("invalid version number")
)

// Event is a recorded domain event with its position in the aggregate's
// stream.
type Event struct {
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	EventType     string          `json:"event_type"`
	EventData     json.RawMessage `json:"event_data"`
	Version       int             `json:"version"`
	RecordedAt    time.Time       `json:"recorded_at"`
}

// MarshalPayload serializes an event payload for EventData.
func MarshalPayload(payload any) (json.RawMessage, error) {
	data, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}
	return data, nil
}

// UnmarshalPayload deserializes an event payload into out.
func UnmarshalPayload(data json.RawMessage, out any) error {
	if err := jsoniter.ConfigFastest.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal event payload: %w", err)
	}
	return nil
}

// Journal is an in-memory append-only event log with optimistic
// concurrency control per aggregate stream.
type Journal struct {
	mu      sync.RWMutex
	streams map[uuid.UUID][]Event
	tracer  trace.Tracer
}

func NewJournal() *Journal {
	return &Journal{
		streams: make(map[uuid.UUID][]Event),
		tracer:  otel.Tracer("librafine/ledger"),
	}
}

// Append adds events to an aggregate's stream after verifying the
// caller's view of the stream is current.
func (j *Journal) Append(ctx context.Context, aggregateID uuid.UUID, aggregateType string, expectedVersion int, events []Event) error {
	_, span := j.tracer.Start(ctx, "ledger.append",
		trace.WithAttributes(
			attribute.String("aggregate.id", aggregateID.String()),
			attribute.String("aggregate.type", aggregateType),
			attribute.Int("expected.version", expectedVersion),
			attribute.Int("event.count", len(events)),
		),
	)
	defer span.End()

	if expectedVersion < 0 {
		return ErrInvalidVersion
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	currentVersion := len(j.streams[aggregateID])
	if currentVersion != expectedVersion {
		span.SetAttributes(
			attribute.Int("actual.version", currentVersion),
			attribute.Bool("conflict.detected", true),
		)
		return ErrConcurrencyConflict
	}

	for i, event := range events {
		event.AggregateID = aggregateID
		event.AggregateType = aggregateType
		event.Version = expectedVersion + i + 1
		event.RecordedAt = time.Now().UTC()
		j.streams[aggregateID] = append(j.streams[aggregateID], event)
	}

	return nil
}

// Events returns a copy of the aggregate's stream in version order.
func (j *Journal) Events(ctx context.Context, aggregateID uuid.UUID) []Event {
	_, span := j.tracer.Start(ctx, "ledger.load",
		trace.WithAttributes(attribute.String("aggregate.id", aggregateID.String())),
	)
	defer span.End()

	j.mu.RLock()
	defer j.mu.RUnlock()

	stream := j.streams[aggregateID]
	out := make([]Event, len(stream))
	copy(out, stream)
	return out
}

// Version returns the current version of the aggregate's stream, zero if
// no events were recorded.
func (j *Journal) Version(aggregateID uuid.UUID) int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.streams[aggregateID])
}
