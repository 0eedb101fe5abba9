package ports

import (
	"context"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for the transactional
// outbox. Messages are written in the same transaction as the state change
// that produced them and published asynchronously by the relay job.
type OutboxRepository interface {
	// Add persists a new outbox message.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnpublished retrieves up to limit messages that have not been
	// published yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error)

	// MarkPublished records that the message with the given identifier was
	// handed to the broker.
	MarkPublished(ctx context.Context, id kernel.UUID) error

	// RecordFailedAttempt increments the failed publish counter for the
	// message with the given identifier.
	RecordFailedAttempt(ctx context.Context, id kernel.UUID) error
}
