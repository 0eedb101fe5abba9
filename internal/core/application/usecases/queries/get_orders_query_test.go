package queries_test

import (
	"testing"

	"fasttechfoods/internal/core/application/usecases/queries"
	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("should create unfiltered query", func(t *testing.T) {
		q, err := queries.NewGetOrdersQuery(employeeClaims(t, 5), order.Unknown)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, order.Unknown, q.Status())
	})

	t.Run("should create status-filtered query", func(t *testing.T) {
		q, err := queries.NewGetOrdersQuery(employeeClaims(t, 5), order.Pending)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, q.Status())
	})

	t.Run("should reject invalid status filter", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(employeeClaims(t, 5), order.Status(99))
		require.Error(t, err)
	})

	t.Run("should reject invalid claims", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(auth.Claims{}, order.Unknown)
		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var q queries.GetOrdersQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetOrdersQueryIsNotConstructed)
	})
}
