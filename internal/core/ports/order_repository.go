package ports

import (
	"context"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order store is the system of record: identifiers and versions are
// assigned on insert and enforced on update.
type OrderRepository interface {
	// Add persists a new order aggregate to storage together with the
	// identifier of the creation event that produced it. The event identifier
	// is unique per order, so redelivered creation events surface as
	// errs.AlreadyExistsError instead of duplicate rows.
	Add(ctx context.Context, aggregate *order.Order, eventID kernel.UUID) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: a stale version returns
	// errs.VersionConflictError and leaves the row untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id uint64) (*order.Order, error)
}
