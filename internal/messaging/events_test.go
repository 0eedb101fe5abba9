package messaging_test

import (
	"testing"

	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/messaging"
	"fasttechfoods/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(1, "X-Burger", 2, 25.90)
	require.NoError(t, err)
	o, err := order.NewOrder(7, "Maria Silva", order.Delivery, []order.Line{line})
	require.NoError(t, err)
	return o
}

func TestNewOrderCreated(t *testing.T) {
	t.Run("should carry the full order payload", func(t *testing.T) {
		eventID := kernel.NewUUID()
		o := sampleOrder(t)

		event := messaging.NewOrderCreated(eventID, o)

		assert.Equal(t, messaging.EventOrderCreated, event.EventType)
		assert.Equal(t, eventID.String(), event.EventID)
		assert.Equal(t, uint64(7), event.CustomerID)
		assert.Equal(t, "Maria Silva", event.CustomerName)
		require.Len(t, event.Lines, 1)
		assert.InDelta(t, 51.80, event.Lines[0].TotalPrice, 1e-9)
		assert.InDelta(t, 51.80, event.TotalAmount, 1e-9)
		assert.Equal(t, "Delivery", event.DeliveryChannel)
		assert.Equal(t, "Pending", event.Status)
		require.NoError(t, event.Validate())
	})
}

func TestDecodeOrderCreated(t *testing.T) {
	t.Run("should round-trip through encode", func(t *testing.T) {
		event := messaging.NewOrderCreated(kernel.NewUUID(), sampleOrder(t))
		body, err := event.Encode()
		require.NoError(t, err)

		decoded, err := messaging.DecodeOrderCreated(body)

		require.NoError(t, err)
		assert.Equal(t, event.EventID, decoded.EventID)
		assert.Equal(t, event.CustomerID, decoded.CustomerID)
		assert.InDelta(t, event.TotalAmount, decoded.TotalAmount, 1e-9)
	})

	t.Run("should tolerate unknown additional fields", func(t *testing.T) {
		event := messaging.NewOrderCreated(kernel.NewUUID(), sampleOrder(t))
		body, err := event.Encode()
		require.NoError(t, err)
		extended := []byte(`{"futureField":"x",` + string(body[1:]))

		decoded, err := messaging.DecodeOrderCreated(extended)

		require.NoError(t, err)
		assert.Equal(t, event.EventID, decoded.EventID)
	})

	t.Run("should reject non-JSON bodies", func(t *testing.T) {
		_, err := messaging.DecodeOrderCreated([]byte("not json at all"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		cases := map[string]string{
			"missing event id":  `{"eventType":"order.created","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Delivery","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"missing customer":  `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Delivery","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"empty lines":       `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[],"total":10,"deliveryChannel":"Delivery","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"zero quantity":     `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":0,"unitPrice":10,"totalPrice":0}],"total":10,"deliveryChannel":"Delivery","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"unknown status":    `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Delivery","status":"Shipped","createdAt":"2025-03-10T12:00:00Z"}`,
			"unknown channel":   `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Teleport","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"wrong event type":  `{"eventType":"order.updated","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Delivery","status":"Pending","createdAt":"2025-03-10T12:00:00Z"}`,
			"zero created time": `{"eventType":"order.created","eventId":"550e8400-e29b-41d4-a716-446655440000","customerId":7,"customerName":"Maria","lines":[{"menuItemId":1,"menuItemName":"X","quantity":1,"unitPrice":10,"totalPrice":10}],"total":10,"deliveryChannel":"Delivery","status":"Pending"}`,
		}

		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := messaging.DecodeOrderCreated([]byte(body))
				require.Error(t, err)
			})
		}
	})
}
