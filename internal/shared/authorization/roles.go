// Package authorization defines customer roles and access checks shared by
// middleware and use cases.
package authorization

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// ParseRole falls back to the customer role for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}

// OwnedResource is anything with an owning customer.
type OwnedResource interface {
	OwnerID() uint
}

// CanAccess reports whether a customer may act on a resource: admins always,
// owners on their own resources.
func CanAccess(customerID uint, role Role, resource OwnedResource) bool {
	if role.IsAdmin() {
		return true
	}
	return customerID == resource.OwnerID()
}
