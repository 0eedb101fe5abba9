package queries

import (
	"errors"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetCustomerOrdersQuery retrieves the order history of one customer, newest
// first. Customers may only list their own history; staff may list anyone's.
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	claims     auth.Claims
	customerID uint64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(claims auth.Claims, customerID uint64) (GetCustomerOrdersQuery, error) {
	q := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setClaims(claims),
		q.setCustomerID(customerID),
	); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (q GetCustomerOrdersQuery) Claims() auth.Claims {
	return q.claims
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() uint64 {
	return q.customerID
}

func (q *GetCustomerOrdersQuery) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	q.claims = claims
	return nil
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return ErrCustomerIDIsRequired
	}

	q.customerID = customerID
	return nil
}
