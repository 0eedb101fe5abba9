package commands

import (
	"errors"
	"fmt"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrItemsAreRequired     = errors.New("at least one item is required")
)

// ItemSelection is a requested order line: which catalog item and how many.
// Names and prices are resolved against the catalog at handling time.
type ItemSelection struct {
	MenuItemID uint64
	Quantity   int
}

// CreateOrderCommand represents a customer's request to place a new order.
// Carries the caller's claims so ownership is checked against the order's
// customer, never against transport state.
//
// Example:
//
//	claims, _ := auth.NewClaims(42, auth.RoleCustomer)
//	cmd, err := NewCreateOrderCommand(claims, 42, order.DriveThru, []ItemSelection{
//	    {MenuItemID: 7, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	claims          auth.Claims
	customerID      uint64
	deliveryChannel order.DeliveryChannel
	items           []ItemSelection

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates claims, customer id, delivery channel, and that every item
// selection names a catalog item with a positive quantity.
func NewCreateOrderCommand(
	claims auth.Claims,
	customerID uint64,
	channel order.DeliveryChannel,
	items []ItemSelection,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClaims(claims),
		cmd.setCustomerID(customerID),
		cmd.setDeliveryChannel(channel),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Claims returns the caller's authenticated claims.
func (c CreateOrderCommand) Claims() auth.Claims {
	return c.claims
}

// CustomerID returns the customer the order is placed for.
func (c CreateOrderCommand) CustomerID() uint64 {
	return c.customerID
}

// DeliveryChannel returns the requested fulfillment channel.
func (c CreateOrderCommand) DeliveryChannel() order.DeliveryChannel {
	return c.deliveryChannel
}

// Items returns the requested item selections.
func (c CreateOrderCommand) Items() []ItemSelection {
	items := make([]ItemSelection, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setClaims(claims auth.Claims) error {
	if err := claims.Validate(); err != nil {
		return err
	}

	c.claims = claims
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDeliveryChannel(channel order.DeliveryChannel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	c.deliveryChannel = channel
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSelection) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if item.MenuItemID == 0 {
			return fmt.Errorf("item %d: menu item id is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be greater than 0", i)
		}
	}

	c.items = make([]ItemSelection, len(items))
	copy(c.items, items)
	return nil
}
