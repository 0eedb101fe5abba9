package ports

import (
	"context"

	"fasttechfoods/internal/core/domain/model/kitchen"
)

// KitchenTicketRepository defines the persistence contract for the kitchen's
// local ticket projection, built from consumed order-creation events.
type KitchenTicketRepository interface {
	// Add persists a new kitchen ticket. The ticket's event identifier is
	// unique, so a redelivered event surfaces as errs.AlreadyExistsError
	// instead of a second ticket.
	Add(ctx context.Context, aggregate *kitchen.Ticket) error
}
