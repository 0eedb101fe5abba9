package commands_test

import (
	"testing"

	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/domain/model/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(customerClaims(t, 42), 10, "changed my mind")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, uint64(10), cmd.OrderID())
		assert.Equal(t, "changed my mind", cmd.Reason())
	})

	t.Run("should reject invalid claims", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(auth.Claims{}, 10, "changed my mind")
		require.Error(t, err)
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(customerClaims(t, 42), 0, "changed my mind")
		require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	})

	t.Run("should reject blank reason", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(customerClaims(t, 42), 10, "   ")
		require.ErrorIs(t, err, commands.ErrReasonIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
