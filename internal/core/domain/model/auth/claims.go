package auth

import (
	"fmt"

	"fasttechfoods/internal/pkg/errs"
)

// Role is the caller's role tag supplied by the external credential verifier.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer identifies a customer caller. Customers may only create,
	// view, and cancel their own orders.
	RoleCustomer

	// RoleEmployee identifies a staff caller. Staff may view, filter, and
	// transition any order.
	RoleEmployee
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleEmployee: "Employee",
	}
}

// RoleFromString parses the wire form of a role ("Customer" or "Employee").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleEmployee {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Claims is the opaque caller identity attached to every authorized
// operation: a numeric subject and a role tag. Credential verification is
// delegated to an external collaborator; the application only enforces
// ownership and role checks against these two values. Claims travel as an
// explicit parameter through the call chain, never as implicit request-local
// state.
type Claims struct {
	subjectID uint64
	role      Role
}

// NewClaims creates validated caller claims.
func NewClaims(subjectID uint64, role Role) (Claims, error) {
	if subjectID == 0 {
		return Claims{}, errs.NewValueIsRequiredError("subjectID")
	}
	if err := role.Validate(); err != nil {
		return Claims{}, err
	}
	return Claims{subjectID: subjectID, role: role}, nil
}

// SubjectID returns the caller's numeric identity.
func (c Claims) SubjectID() uint64 {
	return c.subjectID
}

// Role returns the caller's role tag.
func (c Claims) Role() Role {
	return c.role
}

// IsStaff reports whether the caller holds the Employee role.
func (c Claims) IsStaff() bool {
	return c.role == RoleEmployee
}

// Owns reports whether the caller's subject matches the given customer
// reference. Used for owner-or-staff checks on view and cancel operations.
func (c Claims) Owns(customerID uint64) bool {
	return c.subjectID == customerID
}

// Validate checks that the claims carry a subject and a valid role.
func (c Claims) Validate() error {
	if c.subjectID == 0 {
		return errs.NewValueIsRequiredError("subjectID")
	}
	return c.role.Validate()
}
