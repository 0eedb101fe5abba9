package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Each concrete error type
// below unwraps to exactly one of these, so callers can classify errors with
// errors.Is without depending on concrete types.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrItemUnavailable    = errors.New("menu item is unavailable")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("operation is forbidden")
	ErrRemoteCollaborator = errors.New("remote collaborator failure")
	ErrVersionConflict    = errors.New("version conflict")
	ErrAlreadyExists      = errors.New("object already exists")
)

// sanitize folds a value into a single log-safe line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value with an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing entity with an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ItemUnavailableError indicates a catalog item is missing or flagged
// unavailable. Order creation aborts as a whole on this error, no partial
// order is ever produced.
type ItemUnavailableError struct {
	ItemID any
	Cause  error
}

// NewItemUnavailableError creates an error for an unavailable catalog item.
func NewItemUnavailableError(itemID any) *ItemUnavailableError {
	return &ItemUnavailableError{ItemID: itemID}
}

// NewItemUnavailableErrorWithCause creates an error for an unavailable catalog
// item with an underlying cause (for example a failed catalog lookup).
func NewItemUnavailableErrorWithCause(itemID any, cause error) *ItemUnavailableError {
	return &ItemUnavailableError{ItemID: itemID, Cause: cause}
}

func (e *ItemUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrItemUnavailable, sanitize(e.ItemID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrItemUnavailable, sanitize(e.ItemID))
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}

// InvalidTransitionError indicates a state-machine rule was violated.
// The aggregate is left unmodified when this error is returned.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an error for an illegal status transition.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError indicates an ownership or role check failed for the caller.
type ForbiddenError struct {
	Action string
}

// NewForbiddenError creates an error for a caller lacking permission to
// perform the named action.
func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// RemoteCollaboratorError indicates a timeout or error from a remote
// collaborator (catalog, identity, or order-service call). It is surfaced as a
// failed operation, never silently substituted with defaults.
type RemoteCollaboratorError struct {
	Collaborator string
	Cause        error
}

// NewRemoteCollaboratorError creates an error for a failed remote call.
func NewRemoteCollaboratorError(collaborator string, cause error) *RemoteCollaboratorError {
	return &RemoteCollaboratorError{Collaborator: collaborator, Cause: cause}
}

func (e *RemoteCollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrRemoteCollaborator, e.Collaborator, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrRemoteCollaborator, e.Collaborator)
}

func (e *RemoteCollaboratorError) Unwrap() error {
	return ErrRemoteCollaborator
}

// VersionConflictError indicates an optimistic-concurrency check detected a
// stale read during an update. The operation is retryable after re-reading.
type VersionConflictError struct {
	ParamName string
	ID        any
}

// NewVersionConflictError creates an error for a stale concurrent update.
func NewVersionConflictError(paramName string, id any) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, ID: id}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrVersionConflict, e.ParamName, sanitize(e.ID))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// AlreadyExistsError indicates an insert hit a uniqueness constraint. Event
// consumers treat it as proof the delivery was already processed.
type AlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewAlreadyExistsError creates an error for a duplicate insert.
func NewAlreadyExistsError(paramName string, id any) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, ID: id}
}

// NewAlreadyExistsErrorWithCause creates an error for a duplicate insert with
// an underlying cause.
func NewAlreadyExistsErrorWithCause(paramName string, id any, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *AlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrAlreadyExists, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %s", ErrAlreadyExists, e.ParamName, sanitize(e.ID))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}
