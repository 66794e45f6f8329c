// Package events publishes domain events to a RabbitMQ topic exchange.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"estaciona-api/internal/pkg/config"
	"estaciona-api/internal/pkg/errs"
	"estaciona-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// Dial connects and declares a durable topic exchange. Routing keys are event names.
func Dial(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp channel open failed")
	}
	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp exchange declare failed")
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func newPublisher(ch channel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange}
}

// Publish never returns an error; failures are logged and the event is dropped.
func (p *AMQPPublisher) Publish(ctx context.Context, event shared.Event) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "event", event.Name, "error", err.Error())
		return
	}

	// the request context may already be cancelled once the response is written
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, event.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt.UTC(),
		MessageId:    event.EntityID.String(),
		Type:         event.Name,
		Body:         body,
	})
	if err != nil {
		slog.Warn("failed to publish event",
			"event", event.Name,
			"entity_id", event.EntityID.String(),
			"error", err.Error())
		return
	}
	slog.Debug("event published", "event", event.Name, "entity_id", event.EntityID.String())
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		firstErr = p.ch.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event shared.Event) {
	slog.Debug("event publishing disabled", "event", event.Name)
}
