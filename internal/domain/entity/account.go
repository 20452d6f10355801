// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a login identity for the admin dashboard.
// In practice the system carries exactly one provisioned administrator
// account; the entity is still modeled generically so that storage and
// authentication do not depend on that assumption.
type Account struct {
	ID        uuid.UUID // The unique identifier for the account.
	Username  string    // Globally unique login name.
	Password  string    // Stored credential. Either a bcrypt hash or, for legacy configs, the plain secret.
	Role      Role      // The role granted to sessions bound to this account.
	CreatedAt time.Time // Timestamp of when the account was provisioned.
}
