package queries

import (
	"context"

	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order backlog from the database.
// Used by kitchen staff to see what needs a decision or is in flight.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Only staff may list the backlog.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Claims().IsStaff() {
		return nil, errs.NewForbiddenError("list orders")
	}

	if query.Status() == order.Unknown {
		return fetchOrders(ctx, h.db, "TRUE")
	}

	return fetchOrders(ctx, h.db, "status = ?", query.Status().String())
}
