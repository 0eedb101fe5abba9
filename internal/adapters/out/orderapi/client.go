// Package orderapi implements the kitchen's gateway to the order service's
// HTTP API. The caller's bearer token is forwarded unchanged, so the order
// service applies its own authorization rules to every call.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"
)

const (
	defaultTimeout = 3 * time.Second

	// Reads retry transient failures with doubling backoff; writes run a
	// single attempt so a slow success is never applied twice.
	readAttempts   = 3
	initialBackoff = 100 * time.Millisecond
)

// Client is an HTTP implementation of ports.OrderServiceClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an order service client for the given base URL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetOrdersByStatus retrieves orders currently in the named status.
func (c *Client) GetOrdersByStatus(ctx context.Context, token string, status string) ([]ports.OrderSnapshot, error) {
	return c.getOrders(ctx, token, c.baseURL+"/api/orders?status="+status)
}

// GetAllOrders retrieves all orders visible to the caller.
func (c *Client) GetAllOrders(ctx context.Context, token string) ([]ports.OrderSnapshot, error) {
	return c.getOrders(ctx, token, c.baseURL+"/api/orders")
}

func (c *Client) getOrders(ctx context.Context, token, url string) ([]ports.OrderSnapshot, error) {
	body, err := c.getWithRetry(ctx, token, url)
	if err != nil {
		return nil, err
	}

	var orders []ports.OrderSnapshot
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, errs.NewRemoteCollaboratorError("order service", err)
	}
	return orders, nil
}

// getWithRetry performs a GET with the bearer token, retrying transport
// failures and 5xx responses up to readAttempts times.
func (c *Client) getWithRetry(ctx context.Context, token, url string) ([]byte, error) {
	backoff := initialBackoff

	var lastErr error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, errs.NewRemoteCollaboratorError("order service", ctx.Err())
			}
			backoff *= 2
		}

		body, retryable, err := c.getOnce(ctx, token, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, token, url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, errs.NewRemoteCollaboratorError("order service", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, errs.NewRemoteCollaboratorError("order service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusUnauthorized:
		return nil, false, errs.NewForbiddenError("list orders")
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, errs.NewRemoteCollaboratorError("order service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	default:
		return nil, false, errs.NewRemoteCollaboratorError("order service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errs.NewRemoteCollaboratorError("order service", err)
	}
	return data, false, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// UpdateOrderStatus asks the order service to move the order to the given
// status. Runs a single attempt: the order service's own optimistic locking
// rejects a replayed write, so blind retries only add conflict noise.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID uint64, status string, reason string) (*ports.OrderSnapshot, error) {
	payload, err := json.Marshal(updateStatusRequest{Status: status, Reason: reason})
	if err != nil {
		return nil, errs.NewRemoteCollaboratorError("order service", err)
	}

	url := fmt.Sprintf("%s/api/orders/%d/status", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.NewRemoteCollaboratorError("order service", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewRemoteCollaboratorError("order service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	case http.StatusConflict:
		return nil, errs.NewInvalidTransitionError("current", status)
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, errs.NewForbiddenError("update order status")
	default:
		return nil, errs.NewRemoteCollaboratorError("order service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var snapshot ports.OrderSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, errs.NewRemoteCollaboratorError("order service", err)
	}
	return &snapshot, nil
}
