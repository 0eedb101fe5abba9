package commands

import (
	"errors"
	"strings"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelOrderCommand represents a request to cancel an order. Customers may
// cancel their own orders, staff may cancel any order; either way a reason
// must be given.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	claims  auth.Claims
	orderID uint64
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates claims, order id, and that the reason is not blank.
func NewCancelOrderCommand(claims auth.Claims, orderID uint64, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaims(claims),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (c CancelOrderCommand) Claims() auth.Claims {
	return c.claims
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() uint64 {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	c.claims = claims
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
