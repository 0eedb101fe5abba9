package ports

import (
	"context"
	"time"

	"fasttechfoods/internal/core/domain/model/auth"
)

// MenuItem is a catalog entry returned by the menu service.
type MenuItem struct {
	ID        uint64
	Name      string
	Price     float64
	Available bool
}

// MenuClient looks up catalog items in the menu service. Lookup failures and
// timeouts surface as errs.RemoteCollaboratorError.
type MenuClient interface {
	// GetMenuItem retrieves a single catalog item by its identifier.
	GetMenuItem(ctx context.Context, id uint64) (MenuItem, error)
}

// User is a profile returned by the identity service.
type User struct {
	ID   uint64
	Name string
	Role string
}

// IdentityClient resolves user profiles in the identity service.
type IdentityClient interface {
	// GetUser retrieves a user profile by its identifier. Returns
	// errs.ObjectNotFoundError when the identity service does not know the
	// user.
	GetUser(ctx context.Context, id uint64) (User, error)
}

// TokenVerifier validates bearer credentials against the identity service and
// resolves them to caller claims.
type TokenVerifier interface {
	// Verify checks the given bearer token and returns the claims it carries.
	// An invalid or expired token returns errs.ForbiddenError.
	Verify(ctx context.Context, token string) (auth.Claims, error)
}

// OrderSnapshot is an order view returned by the order service's API, used by
// the kitchen workflow which holds no order state of its own.
type OrderSnapshot struct {
	ID                 uint64              `json:"id"`
	CustomerID         uint64              `json:"customerId"`
	CustomerName       string              `json:"customerName"`
	Items              []OrderSnapshotItem `json:"items"`
	TotalAmount        float64             `json:"total"`
	DeliveryChannel    string              `json:"deliveryChannel"`
	Status             string              `json:"status"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          *time.Time          `json:"updatedAt,omitempty"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
}

// OrderSnapshotItem is a single line within an OrderSnapshot.
type OrderSnapshotItem struct {
	MenuItemID   uint64  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
}

// OrderServiceClient is the kitchen's remote gateway to the order service.
// The caller's bearer token is forwarded unchanged on every call, so the
// order service applies its own authorization rules.
type OrderServiceClient interface {
	// GetOrdersByStatus retrieves orders currently in the named status.
	GetOrdersByStatus(ctx context.Context, token string, status string) ([]OrderSnapshot, error)

	// GetAllOrders retrieves all orders visible to the caller.
	GetAllOrders(ctx context.Context, token string) ([]OrderSnapshot, error)

	// UpdateOrderStatus asks the order service to move the order to the given
	// status. Reason is required for Rejected and Cancelled and ignored
	// otherwise. Returns the updated order view on success.
	UpdateOrderStatus(ctx context.Context, token string, orderID uint64, status string, reason string) (*OrderSnapshot, error)
}
