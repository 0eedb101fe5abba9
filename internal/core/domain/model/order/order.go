package order

import (
	"errors"
	"time"

	"fasttechfoods/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer order. It owns an ordered list
// of Line entities exclusively (deleting the order deletes its lines) and
// manages the lifecycle from Pending through the kitchen workflow to a
// terminal state.
//
// Order follows these invariants:
//   - Total always equals the sum of line totals computed at creation time
//   - Lines are immutable once the order exists
//   - Status transitions follow the state machine in Status
//   - Cancel and Reject require a non-empty reason
//   - Every successful transition sets the update timestamp
//
// The id is assigned by the persistence layer, not at creation time: creation
// only emits an event, and the order is durably materialized by the event
// relay. A freshly created aggregate therefore carries id 0 until restored
// from storage.
type Order struct {
	// id is the storage-assigned identity, 0 until persisted
	id uint64

	// version is the optimistic-concurrency counter maintained by storage
	version int

	// customerID references the ordering customer
	customerID uint64

	// customerName is the customer display name denormalized at creation
	customerName string

	// lines are the ordered line items, immutable after construction
	lines []Line

	// totalAmount is the sum of line totals, computed at creation
	totalAmount float64

	// deliveryChannel is how the customer receives the order
	deliveryChannel DeliveryChannel

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// updatedAt is set by every successful status transition
	updatedAt *time.Time

	// cancellationReason records why the order was cancelled or rejected
	cancellationReason string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with its total computed from
// the given lines. This is the shape published in the creation event; the
// order has no id yet.
//
// Parameters:
//   - customerID: the ordering customer's reference (must be non-zero)
//   - customerName: display name denormalized at creation (must be non-empty)
//   - channel: the delivery channel (must be a valid channel)
//   - lines: the order lines (must be non-empty, each constructed via NewLine)
func NewOrder(customerID uint64, customerName string, channel DeliveryChannel, lines []Line) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomer(customerID, customerName),
		o.setDeliveryChannel(channel),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence or from an event
// payload. Stored totals, timestamps, and the status are taken as-is; the
// status and channel must still be valid values.
func RestoreOrder(
	id uint64,
	version int,
	customerID uint64,
	customerName string,
	channel DeliveryChannel,
	lines []Line,
	totalAmount float64,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
	cancellationReason string,
) (*Order, error) {
	o := &Order{
		id:                 id,
		version:            version,
		totalAmount:        totalAmount,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		cancellationReason: cancellationReason,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setCustomer(customerID, customerName),
		o.setDeliveryChannel(channel),
		o.setLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	// keep the stored total, setLines recomputed it
	o.totalAmount = totalAmount
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two persisted orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the storage-assigned identity, 0 for unpersisted orders.
func (o *Order) ID() uint64 {
	return o.id
}

// Version returns the optimistic-concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// CustomerID returns the ordering customer's reference.
func (o *Order) CustomerID() uint64 {
	return o.customerID
}

// CustomerName returns the denormalized customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Lines returns a copy of the order lines; the aggregate's own list stays
// immutable.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalAmount returns the order total computed at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryChannel returns the delivery channel.
func (o *Order) DeliveryChannel() DeliveryChannel {
	return o.deliveryChannel
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last transition timestamp, nil if never transitioned.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// CancellationReason returns the recorded cancellation or rejection reason.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Accept marks the order accepted by kitchen staff.
// Legal only from Pending.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Reject declines the order with a reason. Legal only from Pending; the
// reason must be non-empty. On an illegal transition the order, including the
// recorded reason, is left untouched.
func (o *Order) Reject(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	o.touch()
	return nil
}

// StartPreparing marks the kitchen as working on the order.
// Legal only from Accepted.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Finish marks preparation complete, the order becomes Ready.
// Legal only from Preparing.
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Deliver marks the order handed over to the customer.
// Legal only from Ready.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel cancels the order with a reason. Legal only from Pending or
// Accepted; the reason must be non-empty. On an illegal transition the order,
// including the recorded reason, is left untouched.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	o.touch()
	return nil
}

// TransitionTo applies the transition leading to the target status, routing
// through the specific transition methods so every state-machine rule and
// reason requirement applies.
func (o *Order) TransitionTo(target Status, reason string) error {
	switch target {
	case Accepted:
		return o.Accept()
	case Rejected:
		return o.Reject(reason)
	case Preparing:
		return o.StartPreparing()
	case Ready:
		return o.Finish()
	case Delivered:
		return o.Deliver()
	case Cancelled:
		return o.Cancel(reason)
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// touch records the transition timestamp.
func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

func (o *Order) setCustomer(id uint64, name string) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerID = id
	o.customerName = name
	return nil
}

func (o *Order) setDeliveryChannel(channel DeliveryChannel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.deliveryChannel = channel
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	total := 0.0
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total += line.TotalPrice()
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.totalAmount = total
	return nil
}
