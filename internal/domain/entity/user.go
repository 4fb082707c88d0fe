package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity, representing a unique shopper or administrator.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // Primary contact email, also the login identifier.
	Name      string    // Display name.
	IsAdmin   bool      // Grants access to the back-office and suppresses cart mutation.
	Profile   *Profile  // Optional shipping profile. Nil until the user fills it in.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// Roles derives the role set from the account flags.
func (u *User) Roles() Roles {
	roles := Roles{RoleCustomer}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}

// Profile holds the shipping and contact details attached to an account.
type Profile struct {
	UserID    uuid.UUID // Foreign key linking this profile to its User.
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Phone     string
	UpdatedAt time.Time
}
