package errs_test

import (
	"errors"
	"testing"

	"fasttechfoods/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "7", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "7", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 7 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with numeric ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("2 is not a valid delivery channel")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryChannel", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: deliveryChannel (cause: 2 is not a valid delivery channel)", err.Error())
	})

	t.Run("sanitize folds newlines in cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("payload", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestItemUnavailableError(t *testing.T) {
	t.Run("NewItemUnavailableError", func(t *testing.T) {
		err := errs.NewItemUnavailableError(3)

		assert.Equal(t, 3, err.ItemID)
		assert.Equal(t, "menu item is unavailable: 3", err.Error())
		assert.Equal(t, errs.ErrItemUnavailable, err.Unwrap())
	})

	t.Run("NewItemUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("catalog lookup timed out")
		err := errs.NewItemUnavailableErrorWithCause(5, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "menu item is unavailable: 5 (cause: catalog lookup timed out)", err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Ready", "Rejected")

	assert.Equal(t, "Ready", err.From)
	assert.Equal(t, "Rejected", err.To)
	assert.Equal(t, "invalid status transition: Ready -> Rejected", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("cancel order 5")

	assert.Equal(t, "cancel order 5", err.Action)
	assert.Equal(t, "operation is forbidden: cancel order 5", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestRemoteCollaboratorError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewRemoteCollaboratorError("menu-service", cause)

		assert.Equal(t, "menu-service", err.Collaborator)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "remote collaborator failure: menu-service (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrRemoteCollaborator, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewRemoteCollaboratorError("identity-service", nil)
		assert.Equal(t, "remote collaborator failure: identity-service", err.Error())
	})
}

func TestVersionConflictError(t *testing.T) {
	err := errs.NewVersionConflictError("order", 42)

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, 42, err.ID)
	assert.Equal(t, "version conflict: order 42", err.Error())
	assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := errs.NewAlreadyExistsError("eventId", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")

		assert.Equal(t, "eventId", err.ParamName)
		assert.Equal(t, "object already exists: eventId 6ba7b810-9dad-11d1-80b4-00c04fd430c8", err.Error())
		assert.Equal(t, errs.ErrAlreadyExists, err.Unwrap())
	})

	t.Run("NewAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewAlreadyExistsErrorWithCause("eventId", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object already exists: eventId abc (cause: duplicated key not allowed)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "menu item is unavailable", errs.ErrItemUnavailable.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "remote collaborator failure", errs.ErrRemoteCollaborator.Error())
		assert.Equal(t, "version conflict", errs.ErrVersionConflict.Error())
		assert.Equal(t, "object already exists", errs.ErrAlreadyExists.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewItemUnavailableError(3), errs.ErrItemUnavailable)
		require.ErrorIs(t, errs.NewInvalidTransitionError("Ready", "Rejected"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewForbiddenError("view order"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewRemoteCollaboratorError("menu-service", nil), errs.ErrRemoteCollaborator)
		require.ErrorIs(t, errs.NewVersionConflictError("order", 1), errs.ErrVersionConflict)
		require.ErrorIs(t, errs.NewAlreadyExistsError("eventId", "abc"), errs.ErrAlreadyExists)
	})
}
