// Package menuhttp implements the catalog lookup port over the menu
// service's HTTP API.
package menuhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"
)

const defaultTimeout = 3 * time.Second

// Client is an HTTP implementation of ports.MenuClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a menu service client for the given base URL.
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

type menuItemResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// GetMenuItem retrieves one catalog item. A missing item maps to
// errs.ObjectNotFoundError; transport failures and unexpected statuses map to
// errs.RemoteCollaboratorError.
func (c *Client) GetMenuItem(ctx context.Context, id uint64) (ports.MenuItem, error) {
	url := fmt.Sprintf("%s/api/menu/items/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.MenuItem{}, errs.NewRemoteCollaboratorError("menu service", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.MenuItem{}, errs.NewRemoteCollaboratorError("menu service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id)
	default:
		return ports.MenuItem{}, errs.NewRemoteCollaboratorError("menu service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body menuItemResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.MenuItem{}, errs.NewRemoteCollaboratorError("menu service", err)
	}

	return ports.MenuItem{
		ID:        body.ID,
		Name:      body.Name,
		Price:     body.Price,
		Available: body.IsAvailable,
	}, nil
}
