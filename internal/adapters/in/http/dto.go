package http

import (
	"time"

	"fasttechfoods/internal/core/application/usecases/queries"
	"fasttechfoods/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderItem is one requested catalog item in an order placement.
type CreateOrderItem struct {
	MenuItemID uint64 `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the order placement body.
type CreateOrderRequest struct {
	CustomerID      uint64            `json:"customerId"`
	DeliveryChannel string            `json:"deliveryChannel"`
	Items           []CreateOrderItem `json:"items"`
}

// UpdateStatusRequest asks for a status transition. Reason is required for
// Rejected and Cancelled.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// CancelOrderRequest carries the customer's cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// RejectOrderRequest carries the kitchen's rejection reason.
type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderItemView is one line of an order view.
type OrderItemView struct {
	MenuItemID   uint64  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

// OrderView is the order representation served by this API. An order fresh
// out of placement carries id 0 until the creation event is consumed and the
// store assigns one.
type OrderView struct {
	ID                 uint64          `json:"id"`
	CustomerID         uint64          `json:"customerId"`
	CustomerName       string          `json:"customerName"`
	Items              []OrderItemView `json:"items"`
	TotalAmount        float64         `json:"total"`
	DeliveryChannel    string          `json:"deliveryChannel"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          *time.Time      `json:"updatedAt,omitempty"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
}

func viewFromAggregate(o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		items = append(items, OrderItemView{
			MenuItemID:   line.MenuItemID(),
			MenuItemName: line.MenuItemName(),
			Quantity:     line.Quantity(),
			UnitPrice:    line.UnitPrice(),
			TotalPrice:   line.TotalPrice(),
		})
	}

	return OrderView{
		ID:                 o.ID(),
		CustomerID:         o.CustomerID(),
		CustomerName:       o.CustomerName(),
		Items:              items,
		TotalAmount:        o.TotalAmount(),
		DeliveryChannel:    o.DeliveryChannel().String(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		CancellationReason: o.CancellationReason(),
	}
}

func viewFromQueryResponse(r queries.OrderResponse) OrderView {
	items := make([]OrderItemView, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, OrderItemView{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
		})
	}

	return OrderView{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		CustomerName:       r.CustomerName,
		Items:              items,
		TotalAmount:        r.TotalAmount,
		DeliveryChannel:    r.DeliveryChannel,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CancellationReason: r.CancellationReason,
	}
}

func viewsFromQueryResponses(rs []queries.OrderResponse) []OrderView {
	views := make([]OrderView, 0, len(rs))
	for _, r := range rs {
		views = append(views, viewFromQueryResponse(r))
	}
	return views
}
