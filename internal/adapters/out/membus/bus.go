// Package membus provides an in-memory message bus implementing the broker
// channel port with at-least-once delivery. Every subscriber group gets its
// own queue; published messages are fanned out to all groups, and consumers
// within a group compete for deliveries. Redelivery after a Nack with requeue
// is bounded by the bus's delivery limit, mirroring the delivery limit
// configured on the durable broker's queues.
//
// The bus exists for deterministic consumer and relay tests; production wiring
// uses the RabbitMQ adapter.
package membus

import (
	"context"
	"errors"
	"sync"

	"fasttechfoods/internal/core/ports"
)

// ErrAlreadySettled is returned when a delivery is acked or nacked twice.
var ErrAlreadySettled = errors.New("delivery already settled")

// ErrBusClosed is returned when publishing on a closed bus.
var ErrBusClosed = errors.New("message bus is closed")

const queueCapacity = 1024

// Bus is an in-memory ports.MessageBus.
type Bus struct {
	maxDeliveries int

	mu      sync.RWMutex
	groups  map[string]chan *delivery
	dropped int
	closed  bool
	done    chan struct{}
}

// NewBus creates a bus whose deliveries are retried at most maxDeliveries
// times before being dropped as poison.
func NewBus(maxDeliveries int) *Bus {
	if maxDeliveries < 1 {
		maxDeliveries = 1
	}

	return &Bus{
		maxDeliveries: maxDeliveries,
		groups:        make(map[string]chan *delivery),
		done:          make(chan struct{}),
	}
}

// Publish fans the body out to every subscriber group's queue.
func (b *Bus) Publish(ctx context.Context, body []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	queues := make([]chan *delivery, 0, len(b.groups))
	for _, q := range b.groups {
		queues = append(queues, q)
	}
	b.mu.RUnlock()

	for _, q := range queues {
		payload := make([]byte, len(body))
		copy(payload, body)

		select {
		case q <- &delivery{bus: b, queue: q, body: payload, deliveries: 1}:
		case <-ctx.Done():
			return ctx.Err()
		case <-b.done:
			return ErrBusClosed
		}
	}

	return nil
}

// Subscribe joins the named group and returns a delivery channel. Only
// messages published after the group first exists reach its queue. The
// returned channel closes when ctx is cancelled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, group string) (<-chan ports.Delivery, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}

	q, ok := b.groups[group]
	if !ok {
		q = make(chan *delivery, queueCapacity)
		b.groups[group] = q
	}
	b.mu.Unlock()

	out := make(chan ports.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case d := <-q:
				select {
				case out <- d:
				case <-ctx.Done():
					// hand the unconsumed delivery back to the group
					d.requeue()
					return
				case <-b.done:
					return
				}
			}
		}
	}()

	return out, nil
}

// Close shuts the bus down. Subscriber channels close and further publishes fail.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.done)
	}
	return nil
}

// Dropped reports how many deliveries were discarded as poison or because the
// delivery limit was exhausted.
func (b *Bus) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

type delivery struct {
	bus   *Bus
	queue chan *delivery
	body  []byte

	mu         sync.Mutex
	deliveries int
	settled    bool
}

// Body returns the raw message payload.
func (d *delivery) Body() []byte {
	return d.body
}

// Ack confirms successful processing.
func (d *delivery) Ack() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.settled {
		return ErrAlreadySettled
	}

	d.settled = true
	return nil
}

// Nack reports failed processing. With requeue the message goes to the back
// of the group's queue until the delivery limit is reached; without requeue
// it is dropped.
func (d *delivery) Nack(requeue bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.settled {
		return ErrAlreadySettled
	}
	d.settled = true

	if !requeue || d.deliveries >= d.bus.maxDeliveries {
		d.bus.countDropped()
		return nil
	}

	next := &delivery{bus: d.bus, queue: d.queue, body: d.body, deliveries: d.deliveries + 1}
	select {
	case d.queue <- next:
	default:
		go func() {
			select {
			case d.queue <- next:
			case <-d.bus.done:
			}
		}()
	}

	return nil
}

// requeue puts an undelivered message back on the group queue without
// consuming a delivery attempt.
func (d *delivery) requeue() {
	next := &delivery{bus: d.bus, queue: d.queue, body: d.body, deliveries: d.deliveries}
	select {
	case d.queue <- next:
	default:
		go func() {
			select {
			case d.queue <- next:
			case <-d.bus.done:
			}
		}()
	}
}

func (b *Bus) countDropped() {
	b.mu.Lock()
	b.dropped++
	b.mu.Unlock()
}
