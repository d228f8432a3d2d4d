package domain

import "time"

// Role is the coarse access level carried in a token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated caller for the lifetime of one request.
type Identity struct {
	UserID    string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
