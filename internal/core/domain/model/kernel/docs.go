// Package kernel provides shared value objects used across bounded contexts.
//
// The package currently contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid,
//     used for creation-event and outbox-message identities
//
// Kernel types are deliberately free of business rules beyond their own
// validity, so any aggregate or adapter may depend on them without coupling
// contexts together.
package kernel
