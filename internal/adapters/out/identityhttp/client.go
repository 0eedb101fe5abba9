// Package identityhttp implements the identity lookup and credential
// verification ports over the auth service's HTTP API.
package identityhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fasttechfoods/internal/core/domain/model/auth"
	"fasttechfoods/internal/core/ports"
	"fasttechfoods/internal/pkg/errs"
)

const defaultTimeout = 3 * time.Second

// Client is an HTTP implementation of ports.IdentityClient and
// ports.TokenVerifier.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an auth service client for the given base URL.
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

type userResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type verifyResponse struct {
	SubjectID uint64 `json:"subjectId"`
	Role      string `json:"role"`
}

// GetUser resolves a user profile by id. An unknown user maps to
// errs.ObjectNotFoundError.
func (c *Client) GetUser(ctx context.Context, id uint64) (ports.User, error) {
	url := fmt.Sprintf("%s/api/users/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.User{}, errs.NewRemoteCollaboratorError("auth service", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.User{}, errs.NewRemoteCollaboratorError("auth service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ports.User{}, errs.NewObjectNotFoundError("customerId", id)
	default:
		return ports.User{}, errs.NewRemoteCollaboratorError("auth service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.User{}, errs.NewRemoteCollaboratorError("auth service", err)
	}

	return ports.User{ID: body.ID, Name: body.Name, Role: body.Role}, nil
}

// Verify checks the bearer token against the auth service and resolves the
// caller's claims. Rejected credentials map to errs.ForbiddenError, outages
// to errs.RemoteCollaboratorError.
func (c *Client) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, errs.NewForbiddenError("authenticate without credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/verify", nil)
	if err != nil {
		return auth.Claims{}, errs.NewRemoteCollaboratorError("auth service", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return auth.Claims{}, errs.NewRemoteCollaboratorError("auth service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return auth.Claims{}, errs.NewForbiddenError("authenticate with the presented credentials")
	default:
		return auth.Claims{}, errs.NewRemoteCollaboratorError("auth service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return auth.Claims{}, errs.NewRemoteCollaboratorError("auth service", err)
	}

	role, err := auth.RoleFromString(body.Role)
	if err != nil {
		return auth.Claims{}, errs.NewForbiddenError("authenticate with an unknown role")
	}

	return auth.NewClaims(body.SubjectID, role)
}
