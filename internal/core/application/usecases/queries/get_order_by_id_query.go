package queries

import (
	"errors"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// GetOrderByIDQuery retrieves a single order view. Customers may only see
// their own orders; staff may see any.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(claims, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, query)
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	claims  auth.Claims
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to retrieve one order.
func NewGetOrderByIDQuery(claims auth.Claims, orderID uint64) (GetOrderByIDQuery, error) {
	q := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setClaims(claims),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByIDQueryIsNotConstructed if validation fails.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (q GetOrderByIDQuery) Claims() auth.Claims {
	return q.claims
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() uint64 {
	return q.orderID
}

func (q *GetOrderByIDQuery) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	q.claims = claims
	return nil
}

func (q *GetOrderByIDQuery) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIDIsRequired
	}

	q.orderID = orderID
	return nil
}
