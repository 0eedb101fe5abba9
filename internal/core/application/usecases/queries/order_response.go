// Package queries contains read-only operations over the order store.
// Queries bypass the domain aggregates and read projections directly from the
// database, implementing the read side of the CQRS architecture.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderLineResponse is a single line of an order view.
type OrderLineResponse struct {
	MenuItemID   uint64
	MenuItemName string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
}

// OrderResponse is the order view returned by the read surface.
type OrderResponse struct {
	ID                 uint64
	CustomerID         uint64
	CustomerName       string
	Items              []OrderLineResponse
	TotalAmount        float64
	DeliveryChannel    string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	CancellationReason string
}

// fetchOrders runs the shared order view query with the given WHERE condition
// and loads the lines of every matched order. Results come back newest first.
func fetchOrders(ctx context.Context, db *gorm.DB, cond string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_name,
			total_amount,
			delivery_channel,
			status,
			created_at,
			updated_at,
			cancellation_reason
		FROM orders
		WHERE `+cond+`
		ORDER BY created_at DESC, id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[uint64]int)
	for rows.Next() {
		var resp OrderResponse
		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.TotalAmount,
			&resp.DeliveryChannel,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&resp.CancellationReason,
		)
		if err != nil {
			return nil, err
		}

		resp.Items = make([]OrderLineResponse, 0)
		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	lineRows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			menu_item_name,
			quantity,
			unit_price,
			total_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID uint64
		var line OrderLineResponse
		err = lineRows.Scan(
			&orderID,
			&line.MenuItemID,
			&line.MenuItemName,
			&line.Quantity,
			&line.UnitPrice,
			&line.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, line)
		}
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
