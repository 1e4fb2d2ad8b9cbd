package entity

import "github.com/google/uuid"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer is a user without a truck.
	RoleCustomer Role = "customer"
	// RoleOwner is a user that owns exactly one truck.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOwner:
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller. It is resolved once per request:
// Truck is non-nil exactly when Role is RoleOwner.
type Principal struct {
	User  *User
	Role  Role
	Truck *Truck
}

// NewCustomer builds the principal of a user without a truck.
func NewCustomer(user *User) *Principal {
	return &Principal{User: user, Role: RoleCustomer}
}

// NewOwner builds the principal of a truck owner.
func NewOwner(user *User, truck *Truck) *Principal {
	return &Principal{User: user, Role: RoleOwner, Truck: truck}
}

// ResolvePrincipal picks the variant from the presence of a truck.
func ResolvePrincipal(user *User, truck *Truck) *Principal {
	if truck == nil {
		return NewCustomer(user)
	}

	return NewOwner(user, truck)
}

// IsOwner reports whether the principal owns a truck.
func (p *Principal) IsOwner() bool {
	return p != nil && p.Role == RoleOwner && p.Truck != nil
}

// OwnsTruck reports whether the principal owns the given truck.
func (p *Principal) OwnsTruck(truckID uuid.UUID) bool {
	return p.IsOwner() && p.Truck.ID == truckID
}
