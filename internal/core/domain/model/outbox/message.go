package outbox

import (
	"errors"
	"time"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// Message is a transactional-outbox entry. Order creation durably records the
// serialized event here in the same transaction that accepts the request, and
// a background relay publishes it to the broadcast topic afterwards. A crash
// between accepting the creation and publishing therefore cannot silently
// lose the order.
type Message struct {
	// id is the event id; it doubles as the consumer-side idempotency key
	id kernel.UUID

	// payload is the serialized event body published verbatim
	payload []byte

	createdAt   time.Time
	publishedAt *time.Time

	// attempts counts failed publish attempts, for operator visibility
	attempts int

	isConstructed bool
}

// NewMessage creates an unpublished outbox entry for the given event payload.
func NewMessage(id kernel.UUID, payload []byte) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	return &Message{
		id:            id,
		payload:       payload,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a persisted outbox entry.
func RestoreMessage(id kernel.UUID, payload []byte, createdAt time.Time, publishedAt *time.Time, attempts int) (*Message, error) {
	m, err := NewMessage(id, payload)
	if err != nil {
		return nil, err
	}

	m.createdAt = createdAt
	m.publishedAt = publishedAt
	m.attempts = attempts
	return m, nil
}

// Validate ensures the Message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the event id.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// Payload returns the serialized event body.
func (m *Message) Payload() []byte {
	return m.payload
}

// CreatedAt returns when the entry was recorded.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// PublishedAt returns when the entry was relayed, nil while pending.
func (m *Message) PublishedAt() *time.Time {
	return m.publishedAt
}

// Attempts returns the failed publish attempt count.
func (m *Message) Attempts() int {
	return m.attempts
}

// IsPublished reports whether the entry was relayed to the topic.
func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// MarkPublished records a successful relay.
func (m *Message) MarkPublished() {
	now := time.Now().UTC()
	m.publishedAt = &now
}

// RecordFailedAttempt counts a failed relay attempt.
func (m *Message) RecordFailedAttempt() {
	m.attempts++
}
