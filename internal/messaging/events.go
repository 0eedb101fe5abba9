// Package messaging defines the wire contract for order lifecycle events on
// the broadcast topic.
//
// Event bodies are structurally-versioned JSON documents. Consumers tolerate
// unknown additional fields for forward compatibility and treat missing
// required fields as a poison message.
package messaging

import (
	"encoding/json"
	"time"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/errs"
)

// Event type constants for order lifecycle events.
const (
	EventOrderCreated = "order.created"
)

// OrderLinePayload is one line of an order creation event, carrying the
// name and price snapshots taken at order time.
type OrderLinePayload struct {
	MenuItemID   uint64  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

// OrderCreatedEvent is the broadcast payload emitted when a validated order
// request is accepted. The event id doubles as the idempotency key consumers
// use to deduplicate redeliveries.
type OrderCreatedEvent struct {
	EventType       string             `json:"eventType"`
	EventID         string             `json:"eventId"`
	CustomerID      uint64             `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	Lines           []OrderLinePayload `json:"lines"`
	TotalAmount     float64            `json:"total"`
	DeliveryChannel string             `json:"deliveryChannel"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// NewOrderCreated builds the creation event for a fully-formed order
// aggregate.
func NewOrderCreated(eventID kernel.UUID, o *order.Order) OrderCreatedEvent {
	lines := make([]OrderLinePayload, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLinePayload{
			MenuItemID:   line.MenuItemID(),
			MenuItemName: line.MenuItemName(),
			Quantity:     line.Quantity(),
			UnitPrice:    line.UnitPrice(),
			TotalPrice:   line.TotalPrice(),
		})
	}

	return OrderCreatedEvent{
		EventType:       EventOrderCreated,
		EventID:         eventID.String(),
		CustomerID:      o.CustomerID(),
		CustomerName:    o.CustomerName(),
		Lines:           lines,
		TotalAmount:     o.TotalAmount(),
		DeliveryChannel: o.DeliveryChannel().String(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
	}
}

// Encode serializes the event for publishing.
func (e OrderCreatedEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Validate checks the structural contract of the event. A failing event is a
// poison message: retrying can never make it valid.
func (e OrderCreatedEvent) Validate() error {
	if e.EventType != EventOrderCreated {
		return errs.NewValueIsInvalidError("eventType")
	}
	if _, err := kernel.UUIDFromString(e.EventID); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("eventId", err)
	}
	if e.CustomerID == 0 {
		return errs.NewValueIsRequiredError("customerId")
	}
	if e.CustomerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if len(e.Lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range e.Lines {
		if line.MenuItemID == 0 {
			return errs.NewValueIsRequiredError("lines.menuItemId")
		}
		if line.MenuItemName == "" {
			return errs.NewValueIsRequiredError("lines.menuItemName")
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("lines.quantity")
		}
		if line.UnitPrice <= 0 {
			return errs.NewValueIsInvalidError("lines.unitPrice")
		}
	}
	if e.TotalAmount <= 0 {
		return errs.NewValueIsInvalidError("total")
	}
	if _, err := order.ChannelFromString(e.DeliveryChannel); err != nil {
		return err
	}
	if _, err := order.StatusFromString(e.Status); err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}

// DecodeOrderCreated deserializes and validates a creation event body.
// Unknown fields in the body are ignored for forward compatibility; a body
// that fails to parse or misses required fields is reported as invalid.
func DecodeOrderCreated(body []byte) (OrderCreatedEvent, error) {
	var e OrderCreatedEvent
	if err := json.Unmarshal(body, &e); err != nil {
		return OrderCreatedEvent{}, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	if err := e.Validate(); err != nil {
		return OrderCreatedEvent{}, err
	}
	return e, nil
}
