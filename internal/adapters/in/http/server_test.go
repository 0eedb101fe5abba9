package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apihttp "fasttechfoods/internal/adapters/in/http"
	"fasttechfoods/internal/core/application/usecases/commands"
	"fasttechfoods/internal/core/application/usecases/queries"
	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/domain/model/kernel"
	"fasttechfoods/internal/core/domain/model/order"
	"fasttechfoods/internal/core/domain/model/outbox"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/core/services/kitchenops"
	"fasttechfoods/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier resolves one hardcoded token to fixed claims.
type stubVerifier struct {
	token  string
	claims auth.Claims
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errs.NewForbiddenError("authenticate with the presented credentials")
	}
	return v.claims, nil
}

// fakeOrderStore is an in-memory ports.OrderRepository seeded per test.
type fakeOrderStore struct {
	orders map[uint64]*order.Order
}

func (s *fakeOrderStore) Add(_ context.Context, o *order.Order, _ kernel.UUID) error {
	s.orders[o.ID()] = o
	return nil
}

func (s *fakeOrderStore) Update(_ context.Context, o *order.Order) error {
	s.orders[o.ID()] = o
	return nil
}

func (s *fakeOrderStore) Get(_ context.Context, id uint64) (*order.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

// fakeOrderUoW satisfies commands.OrderUoW and its factory without a real
// transaction.
type fakeOrderUoW struct{ store *fakeOrderStore }

func (u *fakeOrderUoW) Begin(context.Context) error            { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error           { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error         { return nil }
func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository { return u.store }
func (u *fakeOrderUoW) Create() commands.OrderUoW              { return u }

// fakeOutboxUoW satisfies commands.OutboxUoW, its factory, and the outbox
// repository in one piece.
type fakeOutboxUoW struct{ added int }

func (u *fakeOutboxUoW) Begin(context.Context) error              { return nil }
func (u *fakeOutboxUoW) Commit(context.Context) error             { return nil }
func (u *fakeOutboxUoW) Rollback(context.Context) error           { return nil }
func (u *fakeOutboxUoW) OutboxRepository() ports.OutboxRepository { return u }
func (u *fakeOutboxUoW) Create() commands.OutboxUoW               { return u }

func (u *fakeOutboxUoW) Add(context.Context, *outbox.Message) error { u.added++; return nil }
func (u *fakeOutboxUoW) GetUnpublished(context.Context, int) ([]*outbox.Message, error) {
	return nil, nil
}
func (u *fakeOutboxUoW) MarkPublished(context.Context, kernel.UUID) error       { return nil }
func (u *fakeOutboxUoW) RecordFailedAttempt(context.Context, kernel.UUID) error { return nil }

type stubMenuClient struct{}

func (stubMenuClient) GetMenuItem(_ context.Context, id uint64) (ports.MenuItem, error) {
	return ports.MenuItem{ID: id, Name: "Burger", Price: 9.5, Available: true}, nil
}

type stubIdentityClient struct{}

func (stubIdentityClient) GetUser(_ context.Context, id uint64) (ports.User, error) {
	return ports.User{ID: id, Name: "Alice Johnson", Role: "Customer"}, nil
}

type stubOrderServiceClient struct {
	byStatus map[string][]ports.OrderSnapshot
}

func (c stubOrderServiceClient) GetOrdersByStatus(_ context.Context, _ string, status string) ([]ports.OrderSnapshot, error) {
	return c.byStatus[status], nil
}
func (c stubOrderServiceClient) GetAllOrders(context.Context, string) ([]ports.OrderSnapshot, error) {
	var all []ports.OrderSnapshot
	for _, snapshots := range c.byStatus {
		all = append(all, snapshots...)
	}
	return all, nil
}
func (c stubOrderServiceClient) UpdateOrderStatus(_ context.Context, _ string, orderID uint64, status string, _ string) (*ports.OrderSnapshot, error) {
	return &ports.OrderSnapshot{ID: orderID, Status: status}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func customerClaims(t *testing.T, id uint64) auth.Claims {
	t.Helper()
	claims, err := auth.NewClaims(id, auth.RoleCustomer)
	require.NoError(t, err)
	return claims
}

func employeeClaims(t *testing.T, id uint64) auth.Claims {
	t.Helper()
	claims, err := auth.NewClaims(id, auth.RoleEmployee)
	require.NoError(t, err)
	return claims
}

func newTestServer(t *testing.T, claims auth.Claims, store *fakeOrderStore) *echo.Echo {
	t.Helper()

	if store == nil {
		store = &fakeOrderStore{orders: map[uint64]*order.Order{}}
	}
	orderUoW := &fakeOrderUoW{store: store}
	outboxUoW := &fakeOutboxUoW{}

	kitchenClient := stubOrderServiceClient{byStatus: map[string][]ports.OrderSnapshot{
		"Pending": {{ID: 1, CustomerID: 42, Status: "Pending"}},
	}}

	server := apihttp.NewServer(
		commands.NewCreateOrderCommandHandler(outboxUoW, stubMenuClient{}, stubIdentityClient{}),
		commands.NewUpdateOrderStatusCommandHandler(orderUoW),
		commands.NewCancelOrderCommandHandler(orderUoW),
		queries.GetOrderByIDQueryHandler{},
		queries.GetCustomerOrdersQueryHandler{},
		queries.GetOrdersQueryHandler{},
		kitchenops.NewWorkflow(kitchenClient, discardLogger()),
	)

	e := echo.New()
	server.RegisterRoutes(e, stubVerifier{token: "valid-token", claims: claims})
	return e
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seededStore(t *testing.T, id uint64, customerID uint64, status order.Status) *fakeOrderStore {
	t.Helper()

	line, err := order.NewLine(7, "Burger", 1, 9.5)
	require.NoError(t, err)
	o, err := order.NewOrder(customerID, "Alice Johnson", order.InStore, []order.Line{line})
	require.NoError(t, err)
	restored, err := order.RestoreOrder(
		id, 1, o.CustomerID(), o.CustomerName(), o.DeliveryChannel(), o.Lines(),
		o.TotalAmount(), status, o.CreatedAt(), nil, "",
	)
	require.NoError(t, err)

	return &fakeOrderStore{orders: map[uint64]*order.Order{id: restored}}
}

func TestBearerAuth(t *testing.T) {
	t.Run("should reject a request without credentials", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodGet, "/api/kitchen/orders/pending", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodGet, "/api/kitchen/orders/pending", "wrong-token", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should accept a valid order and return the pending view", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), nil)
		body := `{"customerId":42,"deliveryChannel":"DriveThru","items":[{"menuItemId":7,"quantity":2}]}`

		rec := doRequest(e, http.MethodPost, "/api/orders", "valid-token", body)

		require.Equal(t, http.StatusAccepted, rec.Code)
		var view apihttp.OrderView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, uint64(0), view.ID)
		assert.Equal(t, "Pending", view.Status)
		assert.InDelta(t, 19.0, view.TotalAmount, 0.001)
	})

	t.Run("should forbid creating an order for another customer", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), nil)
		body := `{"customerId":43,"deliveryChannel":"DriveThru","items":[{"menuItemId":7,"quantity":2}]}`

		rec := doRequest(e, http.MethodPost, "/api/orders", "valid-token", body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should reject an unknown delivery channel", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), nil)
		body := `{"customerId":42,"deliveryChannel":"Teleport","items":[{"menuItemId":7,"quantity":2}]}`

		rec := doRequest(e, http.MethodPost, "/api/orders", "valid-token", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UpdateOrderStatus(t *testing.T) {
	t.Run("should transition a pending order for staff", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), seededStore(t, 10, 42, order.Pending))

		rec := doRequest(e, http.MethodPut, "/api/orders/10/status", "valid-token", `{"status":"Accepted"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var view apihttp.OrderView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Accepted", view.Status)
	})

	t.Run("should forbid customers from transitioning orders", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), seededStore(t, 10, 42, order.Pending))

		rec := doRequest(e, http.MethodPut, "/api/orders/10/status", "valid-token", `{"status":"Accepted"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should report an impossible transition as a conflict", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), seededStore(t, 10, 42, order.Ready))

		rec := doRequest(e, http.MethodPut, "/api/orders/10/status", "valid-token", `{"status":"Rejected","reason":"nope"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 404 for a missing order", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodPut, "/api/orders/99/status", "valid-token", `{"status":"Accepted"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_CancelOrder(t *testing.T) {
	t.Run("should cancel the caller's own pending order", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), seededStore(t, 10, 42, order.Pending))

		rec := doRequest(e, http.MethodPost, "/api/orders/10/cancel", "valid-token", `{"reason":"changed my mind"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var view apihttp.OrderView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Cancelled", view.Status)
		assert.Equal(t, "changed my mind", view.CancellationReason)
	})

	t.Run("should require a reason", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 42), seededStore(t, 10, 42, order.Pending))

		rec := doRequest(e, http.MethodPost, "/api/orders/10/cancel", "valid-token", `{"reason":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should forbid cancelling another customer's order", func(t *testing.T) {
		e := newTestServer(t, customerClaims(t, 43), seededStore(t, 10, 42, order.Pending))

		rec := doRequest(e, http.MethodPost, "/api/orders/10/cancel", "valid-token", `{"reason":"not mine"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_KitchenSurface(t *testing.T) {
	t.Run("should list the pending backlog", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodGet, "/api/kitchen/orders/pending", "valid-token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var orders []ports.OrderSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		require.Len(t, orders, 1)
		assert.Equal(t, "Pending", orders[0].Status)
	})

	t.Run("should accept an order through the workflow", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodPost, "/api/kitchen/orders/1/accept", "valid-token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var snapshot ports.OrderSnapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, "Accepted", snapshot.Status)
	})

	t.Run("should require a reason to reject", func(t *testing.T) {
		e := newTestServer(t, employeeClaims(t, 5), nil)

		rec := doRequest(e, http.MethodPost, "/api/kitchen/orders/1/reject", "valid-token", `{"reason":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
