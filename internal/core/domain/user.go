package domain

import "time"

// Role is the closed set of actor roles. Admins manage all travel records;
// tourists own records and may propose revisions to them.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTourist Role = "tourist"
)

// ParseRole validates a raw role string. Roles are immutable after signup,
// so this is the only place a role value enters the system.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleTourist:
		return Role(s), nil
	default:
		return "", E(KindInvalidArgument, "role must be either admin or tourist")
	}
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullname"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy with the password hash stripped. Every user that
// leaves the identity service goes through this.
func (u *User) Sanitized() *User {
	out := *u
	out.PasswordHash = ""
	return &out
}
