// Package rabbitmq publishes domain events to a topic exchange. The routing
// key of every message is the event name, e.g. "order.placed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"marketplace/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errors.New("publish NACK from broker")

// confirmation is the broker's answer to one published message.
// *amqp.DeferredConfirmation satisfies it.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

var _ confirmation = (*amqp.DeferredConfirmation)(nil)

// channel publishes a message and hands back the confirmation bound to its
// delivery tag.
type channel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
}

type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

// Publisher sends events with publisher confirms enabled and waits for the
// broker ack of each message. A confirm that arrives after its caller gave up
// is matched to its own message and dropped. Publish calls are serialized.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string

	mu sync.Mutex
}

// Dial connects to url, declares a durable topic exchange and puts the
// channel in confirm mode.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("exchange name is required")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	p := newPublisher(amqpChannel{ch: ch}, exchange)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

// Publish sends events in order and stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		if err := p.publishOne(ctx, event); err != nil {
			return fmt.Errorf("publish %s %s: %w", event.EventName(), event.EventID(), err)
		}
	}
	return nil
}

func (p *Publisher) publishOne(ctx context.Context, event kernel.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	confirm, err := p.ch.Publish(ctx, p.exchange, event.EventName(), amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID().String(),
		Type:         event.EventName(),
		Timestamp:    event.OccurredAt(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}

// Close closes the connection and with it the channel.
func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
