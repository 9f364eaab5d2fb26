package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/arthasetu/loan-service/internal/domain/event"
	pkgkafka "github.com/arthasetu/loan-service/pkg/kafka"
)

// EventPublisher implements port.EventPublisher by writing events to Kafka.
// Events are keyed by aggregate ID, so all events of one loan land on the
// same partition in order.
type EventPublisher struct {
	producer *pkgkafka.Producer
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher on top of the given producer.
func NewEventPublisher(producer *pkgkafka.Producer, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish serializes and sends domain events.
func (p *EventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID(),
			},
		})
	}

	if err := p.producer.Publish(ctx, messages...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	return nil
}
