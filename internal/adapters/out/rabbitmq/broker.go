// Package rabbitmq implements the broker channel port on RabbitMQ. Creation
// events are published to a durable fanout exchange; every subscriber group
// binds its own durable quorum queue, so each group receives every message
// and redelivery after a requeue is bounded by the queue's delivery limit.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"fasttechfoods/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeName is the fanout exchange carrying order events.
const ExchangeName = "order_exchange"

// Config carries the broker connection settings.
type Config struct {
	// URL is the AMQP connection string.
	URL string

	// DeliveryLimit caps how often a message is redelivered before the
	// broker drops it (quorum queue x-delivery-limit).
	DeliveryLimit int

	// Prefetch is the per-consumer unacked message window.
	Prefetch int
}

// Broker is a ports.MessageBus backed by RabbitMQ.
type Broker struct {
	cfg  Config
	conn *amqp.Connection

	mu  sync.Mutex
	pub *amqp.Channel
}

// NewBroker dials the broker and declares the fanout exchange. Declaration is
// idempotent, so every service instance can call it at startup.
func NewBroker(cfg Config) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	pub, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}

	if err = declareExchange(pub); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Broker{cfg: cfg, conn: conn, pub: pub}, nil
}

func declareExchange(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeName,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}
	return nil
}

// Publish sends a persistent message to the fanout exchange.
func (b *Broker) Publish(ctx context.Context, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.pub.PublishWithContext(ctx,
		ExchangeName,
		"",    // fanout ignores the routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", ExchangeName, err)
	}

	return nil
}

// Subscribe declares the group's quorum queue, binds it to the exchange, and
// starts consuming. The returned channel closes when ctx is cancelled or the
// underlying AMQP channel dies.
func (b *Broker) Subscribe(ctx context.Context, group string) (<-chan ports.Delivery, error) {
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consume channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		group,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{
			"x-queue-type":     "quorum",
			"x-delivery-limit": b.cfg.DeliveryLimit,
		},
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %s: %w", group, err)
	}

	if err = ch.QueueBind(group, "", ExchangeName, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("bind queue %s: %w", group, err)
	}

	if err = ch.Qos(b.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("set qos for %s: %w", group, err)
	}

	msgs, err := ch.Consume(
		group,
		"",    // consumer tag assigned by the broker
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("consume from %s: %w", group, err)
	}

	out := make(chan ports.Delivery)
	go func() {
		defer close(out)
		defer ch.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- &delivery{msg: msg}:
				case <-ctx.Done():
					// unsettled message returns to the queue when the
					// channel closes
					return
				}
			}
		}
	}()

	return out, nil
}

// Close releases the broker connection. Unacked deliveries return to their
// queues.
func (b *Broker) Close() error {
	return b.conn.Close()
}

type delivery struct {
	msg amqp.Delivery
}

func (d *delivery) Body() []byte {
	return d.msg.Body
}

func (d *delivery) Ack() error {
	return d.msg.Ack(false)
}

func (d *delivery) Nack(requeue bool) error {
	return d.msg.Nack(false, requeue)
}
