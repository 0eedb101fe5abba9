// Package errs provides standardized error types for the order pipeline.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the error taxonomy of the system:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an order, customer, or item cannot be found
//   - ItemUnavailableError: for when a catalog item is missing or unavailable
//   - InvalidTransitionError: for illegal order status transitions
//   - ForbiddenError: for failed ownership or role checks
//   - RemoteCollaboratorError: for timeouts and failures of remote services
//   - VersionConflictError: for optimistic-concurrency conflicts on updates
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// This standardized approach keeps error classification uniform across
// services: HTTP adapters map sentinels to status codes, the event relay maps
// them to ack/nack decisions, and tests assert against them directly.
package errs
