// Package rabbitmq publishes order change events to a topic exchange. The
// routing key is the event topic, so consumers bind "order.*" or a single
// topic such as "order.completed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant/internal/adapters/out/snapshot"
	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "restaurant.orders"

// EventMessage is the JSON body of a published event.
type EventMessage struct {
	Topic      string             `json:"topic"`
	OrderID    string             `json:"orderId"`
	OccurredAt time.Time          `json:"occurredAt"`
	Order      *snapshot.OrderDTO `json:"order,omitempty"`
}

// EncodeEvent renders event as an EventMessage.
func EncodeEvent(event ports.ChangeEvent) ([]byte, error) {
	msg := EventMessage{Topic: event.Topic, OrderID: event.OrderID, OccurredAt: event.OccurredAt.UTC()}
	if event.Order != nil {
		dto := snapshot.OrderFromDomain(event.Order)
		msg.Order = &dto
	}
	return json.Marshal(msg)
}

// Publisher implements ports.ChangePublisher with publisher confirms. Each
// publish waits on its own deferred confirmation.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

var _ ports.ChangePublisher = (*Publisher)(nil)

// Dial connects to url, declares the durable topic exchange and enables
// publisher confirms.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
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

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends event and waits for the broker to confirm it.
func (p *Publisher) Publish(ctx context.Context, event ports.ChangeEvent) error {
	body, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, event.Topic, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    event.OccurredAt,
		MessageId:    event.OrderID,
		Body:         body,
	})
	if err != nil {
		return err
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return errors.New("publish NACK from broker")
	}
	return nil
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (p *Publisher) Close() error {
	return errors.Join(p.ch.Close(), p.conn.Close())
}
