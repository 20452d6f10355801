// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level attached to an account.
type Role string

const (
	// RoleAdmin grants access to the dashboard read endpoints.
	RoleAdmin Role = "admin"
	// RoleViewer is a non-privileged role; sessions bound to it pass
	// authentication but fail the admin gate.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleViewer:
		return true
	default:
		return false
	}
}
