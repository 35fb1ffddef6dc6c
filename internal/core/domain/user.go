package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels recognised by the system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ParseRole maps an arbitrary input string onto the role enum. Anything that
// is not exactly "admin" becomes staff, so unrecognised values never persist.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleStaff
}

// Valid reports whether r is one of the two recognised roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

var ErrInvalidInput = errors.New("username and password are required")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
