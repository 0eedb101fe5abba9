// Package kitchen provides the kitchen-operations projection of an order.
//
// The kitchen bounded context consumes the same creation events as the
// order-of-record store but persists them under its own identity sequence.
// Tickets are deduplicated by the creation-event id, so a redelivered event
// produces no second ticket.
package kitchen
