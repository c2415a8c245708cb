package model

import "time"

// Role distinguishes vendor accounts from admins and plain users.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleVendor || r == RoleAdmin
}

// VendorUser is an account that may own a vendor.
type VendorUser struct {
	ID           string
	Mobile       string
	OwnerName    string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	UserID string
	Role   Role
}
