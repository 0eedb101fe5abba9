package kitchen

import (
	"errors"
	"time"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/errs"
)

// ErrTicketIsNotConstructed is returned when a Ticket instance was not created
// through NewTicket or RestoreTicket.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket or RestoreTicket")

// Ticket is the kitchen-operations projection of an order. The kitchen
// context tracks the same order under its own identity sequence: a ticket id
// is assigned by the kitchen store and is unrelated to the order-of-record id.
// The originating creation-event id is kept as the deduplication key for
// redelivered messages.
//
// Tickets are read models, they carry no transition behavior of their own;
// the order-of-record state machine is the single source of truth for status.
type Ticket struct {
	// id is the kitchen store's own identity, 0 until persisted
	id uint64

	// eventID deduplicates redelivered creation events
	eventID kernel.UUID

	// customerID and customerName mirror the order payload
	customerID   uint64
	customerName string

	// items mirror the order lines with their snapshots
	items []Item

	totalAmount     float64
	deliveryChannel order.DeliveryChannel
	status          order.Status
	createdAt       time.Time

	isConstructed bool
}

// Item is one line of a kitchen ticket, mirroring the order line snapshot.
type Item struct {
	MenuItemID   uint64
	MenuItemName string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
}

// NewTicket builds a kitchen ticket from a consumed creation event.
func NewTicket(
	eventID kernel.UUID,
	customerID uint64,
	customerName string,
	channel order.DeliveryChannel,
	items []Item,
	totalAmount float64,
	status order.Status,
	createdAt time.Time,
) (*Ticket, error) {
	t := &Ticket{isConstructed: true}

	if err := errors.Join(
		t.setEventID(eventID),
		t.setCustomer(customerID, customerName),
		t.setChannel(channel),
		t.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.totalAmount = totalAmount
	t.status = status
	t.createdAt = createdAt
	return t, nil
}

// RestoreTicket reconstructs a persisted ticket.
func RestoreTicket(
	id uint64,
	eventID kernel.UUID,
	customerID uint64,
	customerName string,
	channel order.DeliveryChannel,
	items []Item,
	totalAmount float64,
	status order.Status,
	createdAt time.Time,
) (*Ticket, error) {
	t, err := NewTicket(eventID, customerID, customerName, channel, items, totalAmount, status, createdAt)
	if err != nil {
		return nil, err
	}

	t.id = id
	return t, nil
}

// Validate ensures the Ticket was created through a constructor.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

// ID returns the kitchen store's own identity, 0 for unpersisted tickets.
func (t *Ticket) ID() uint64 {
	return t.id
}

// EventID returns the originating creation-event id.
func (t *Ticket) EventID() kernel.UUID {
	return t.eventID
}

// CustomerID returns the ordering customer's reference.
func (t *Ticket) CustomerID() uint64 {
	return t.customerID
}

// CustomerName returns the denormalized customer display name.
func (t *Ticket) CustomerName() string {
	return t.customerName
}

// Items returns a copy of the ticket items.
func (t *Ticket) Items() []Item {
	items := make([]Item, len(t.items))
	copy(items, t.items)
	return items
}

// TotalAmount returns the order total carried on the event.
func (t *Ticket) TotalAmount() float64 {
	return t.totalAmount
}

// DeliveryChannel returns the delivery channel.
func (t *Ticket) DeliveryChannel() order.DeliveryChannel {
	return t.deliveryChannel
}

// Status returns the order status carried on the event.
func (t *Ticket) Status() order.Status {
	return t.status
}

// CreatedAt returns the order creation timestamp.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) setEventID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.eventID = id
	return nil
}

func (t *Ticket) setCustomer(id uint64, name string) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	t.customerID = id
	t.customerName = name
	return nil
}

func (t *Ticket) setChannel(channel order.DeliveryChannel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	t.deliveryChannel = channel
	return nil
}

func (t *Ticket) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	t.items = make([]Item, len(items))
	copy(t.items, items)
	return nil
}
