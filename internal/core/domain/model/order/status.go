package order

import (
	"fmt"

	"fasttechfoods/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// kitchen workflow and cannot be mutated from a terminal state.
//
// State transitions:
//
//	Pending ──> Accepted ──> Preparing ──> Ready ──> Delivered
//	   │            │
//	   ├──> Rejected│
//	   └──────┬─────┘
//	          └──> Cancelled
//
// Rejected, Cancelled, and Delivered are terminal. Any transition attempted
// from an illegal source state fails with an InvalidTransitionError and leaves
// the order unmodified.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	// Pending orders await a staff accept or reject decision.
	Pending

	// Accepted indicates kitchen staff accepted the order for preparation.
	Accepted

	// Preparing indicates the kitchen started preparing the order.
	Preparing

	// Ready indicates preparation finished and the order awaits handover.
	Ready

	// Delivered indicates the order was handed to the customer.
	// This is a terminal state.
	Delivered

	// Rejected indicates staff declined the order, with a recorded reason.
	// This is a terminal state.
	Rejected

	// Cancelled indicates the order was cancelled, with a recorded reason.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire/string form.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Rejected:  "Rejected",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the wire form of a status ("Pending", "Accepted",
// ...). Returns an error for unknown values. Used when deserializing events
// and HTTP request bodies.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the human-readable name of the status, which is also its
// wire form in event payloads and HTTP bodies.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed from this
// status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected, a terminal state.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Rejected.String())
	}
	return Rejected, nil
}

// StartPreparing transitions the status to Preparing.
//
// Valid transitions:
//   - Accepted -> Preparing
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) StartPreparing() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), Preparing.String())
	}
	return Preparing, nil
}

// Finish transitions the status to Ready.
//
// Valid transitions:
//   - Preparing -> Ready
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) Finish() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidTransitionError(s.String(), Ready.String())
	}
	return Ready, nil
}

// Deliver transitions the status to Delivered, a terminal state.
//
// Valid transitions:
//   - Ready -> Delivered
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled, a terminal state.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Returns (0, InvalidTransitionError) from any other source state.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
