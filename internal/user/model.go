package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTourist Role = "tourist"
	// RoleVehicleOwner covers both vehicle and package inventory owners.
	RoleVehicleOwner Role = "vehicle_owner"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTourist, RoleVehicleOwner:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Role         Role
	// Approved gates owner-only surfaces (inventory listing, owner booking views).
	// Always true for admins and tourists.
	Approved    bool
	IsActive    bool
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email       string
	DisplayName string
	Role        string
	IsActive    *bool // pointer to distinguish false from not-set

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
