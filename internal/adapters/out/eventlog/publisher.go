// Package eventlog writes domain events to the structured log. It stands in
// for the message broker when none is configured.
package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"event_id", event.EventID().String(),
			"occurred_at", event.OccurredAt(),
			"payload", json.RawMessage(payload))
	}
	return nil
}
