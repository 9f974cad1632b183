package model

// User represents an account able to authenticate against the API.
// Accounts are created only by the store's seeding step; there is no
// self-registration endpoint.  The password is stored as a bcrypt
// hash, never in plain text.
//
// Fields:
//  ID           - opaque identifier assigned at seed time.
//  Email        - unique login identifier.
//  PasswordHash - bcrypt hash of the account password.
//  Role         - one of ADMIN, ASSOCIATION, DONOR.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// Roles recognised by the authorization middleware.
const (
	RoleAdmin       = "ADMIN"
	RoleAssociation = "ASSOCIATION"
	RoleDonor       = "DONOR"
)
