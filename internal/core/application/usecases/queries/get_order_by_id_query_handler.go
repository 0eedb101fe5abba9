package queries

import (
	"context"

	"fasttechfoods/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order view from the database.
// Ownership is checked against the stored row, so a customer probing another
// customer's order gets Forbidden, not NotFound.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist and errs.ForbiddenError when a customer asks for an order
// that is not theirs.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, "id = ?", query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	found := orders[0]
	claims := query.Claims()
	if !claims.IsStaff() && !claims.Owns(found.CustomerID) {
		return OrderResponse{}, errs.NewForbiddenError("view another customer's order")
	}

	return found, nil
}
