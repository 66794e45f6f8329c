//go:build unit

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"estaciona-api/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	calls    int
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.calls++
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	event := shared.Event{
		Name:       shared.EventReservationCreated,
		EntityID:   uuid.New(),
		OccurredAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Data:       map[string]any{"parking_id": "p-1"},
	}

	t.Run("routes by event name with a JSON body", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newPublisher(ch, "estaciona.events")

		p.Publish(context.Background(), event)

		require.Equal(t, 1, ch.calls)
		assert.Equal(t, "estaciona.events", ch.exchange)
		assert.Equal(t, shared.EventReservationCreated, ch.key)
		assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
		assert.Equal(t, "application/json", ch.msg.ContentType)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
		assert.Equal(t, shared.EventReservationCreated, decoded["event"])
		assert.Equal(t, event.EntityID.String(), decoded["entity_id"])
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		p := newPublisher(ch, "estaciona.events")

		assert.NotPanics(t, func() { p.Publish(context.Background(), event) })
		assert.Equal(t, 1, ch.calls)
	})

	t.Run("cancelled request context still publishes", func(t *testing.T) {
		ch := &fakeChannel{}
		p := newPublisher(ch, "estaciona.events")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p.Publish(ctx, event)

		assert.Equal(t, 1, ch.calls)
	})
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "x")

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
