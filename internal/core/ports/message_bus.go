package ports

import (
	"context"
)

// Delivery is a single message received from a subscriber group's queue.
// Every delivery must be settled exactly once with Ack or Nack.
type Delivery interface {
	// Body returns the raw message payload.
	Body() []byte

	// Ack confirms successful processing and removes the message from the
	// group's queue.
	Ack() error

	// Nack reports failed processing. With requeue the message is returned to
	// the group's queue for redelivery, subject to the broker's delivery
	// limit; without requeue it is dropped as poison.
	Nack(requeue bool) error
}

// MessageBus is the broker channel connecting the order service to its
// consumers. Published messages are fanned out to every subscriber group;
// within a group each message is delivered to one consumer at a time, with
// at-least-once semantics.
type MessageBus interface {
	// Publish sends a message body to all subscriber groups.
	Publish(ctx context.Context, body []byte) error

	// Subscribe joins the named subscriber group and returns a channel of
	// deliveries. The channel is closed when ctx is cancelled or the
	// underlying connection is lost.
	Subscribe(ctx context.Context, group string) (<-chan Delivery, error)

	// Close releases the broker connection. Pending unacked deliveries are
	// redelivered by the broker after the connection drops.
	Close() error
}
