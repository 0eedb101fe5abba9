package commands

import (
	"errors"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// UpdateOrderStatusCommand represents a staff request to move an order to a
// new status: accept, reject, start preparing, mark ready, or deliver.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	claims  auth.Claims
	orderID uint64
	target  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The reason is carried as-is; whether it is required depends on the target
// status and is enforced by the order aggregate.
func NewUpdateOrderStatusCommand(
	claims auth.Claims,
	orderID uint64,
	target order.Status,
	reason string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaims(claims),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (c UpdateOrderStatusCommand) Claims() auth.Claims {
	return c.claims
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() uint64 {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Reason returns the supplied reason, empty when none was given.
func (c UpdateOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *UpdateOrderStatusCommand) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	c.claims = claims
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
