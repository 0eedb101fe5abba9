package queries

import (
	"errors"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order backlog, optionally filtered by status,
// newest first. This is a staff-only listing.
//
// Example:
//
//	query, err := NewGetOrdersQuery(claims, order.Pending)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	pending, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	claims auth.Claims
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order backlog. Pass order.Unknown
// as status to list every order regardless of status.
func NewGetOrdersQuery(claims auth.Claims, status order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := q.setClaims(claims); err != nil {
		return GetOrdersQuery{}, err
	}

	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (q GetOrdersQuery) Claims() auth.Claims {
	return q.claims
}

// Status returns the status filter, order.Unknown when unfiltered.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersQuery) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	q.claims = claims
	return nil
}
