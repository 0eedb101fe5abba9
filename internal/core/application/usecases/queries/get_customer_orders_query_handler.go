package queries

import (
	"context"

	"fasttechfoods/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from the
// database, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. A customer asking for another customer's history
// gets errs.ForbiddenError; an empty history is an empty slice, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	claims := query.Claims()
	if !claims.IsStaff() && !claims.Owns(query.CustomerID()) {
		return nil, errs.NewForbiddenError("list another customer's orders")
	}

	return fetchOrders(ctx, h.db, "customer_id = ?", query.CustomerID())
}
