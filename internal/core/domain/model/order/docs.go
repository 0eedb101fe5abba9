// Package order provides the order aggregate and its state machine for the
// food-ordering pipeline.
//
// The package includes:
//   - Order: the aggregate root owning identity, lines, totals, and lifecycle
//   - Line: an immutable line item with name and price snapshots
//   - Status: the state machine enforcing legal status transitions
//   - DeliveryChannel: how the customer receives the order
//
// Key business rules:
//   - The total always equals the sum of line totals computed at creation
//   - Line snapshots make historical orders immune to later catalog changes
//   - Status follows Pending -> Accepted -> Preparing -> Ready -> Delivered,
//     with Rejected (from Pending) and Cancelled (from Pending or Accepted)
//     as terminal branches
//   - Cancel and Reject require a non-empty reason
//   - Illegal transitions fail with an InvalidTransitionError and never mutate
//     the aggregate
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
