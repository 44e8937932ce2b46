package travelpackage

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("package not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNoPrice          = errors.New("either price_per_group or price_per_person is required")
	ErrInvalidPrice     = errors.New("prices must be positive")
	ErrPermissionDenied = errors.New("permission denied")
)

// Package is an owner-curated holiday bundle. It is priced either as a flat
// group price (traveler-count independent) or per person.
type Package struct {
	ID             string
	OwnerID        string
	OwnerName      string
	Name           string
	Description    *string
	PricePerGroup  *float64
	PricePerPerson *float64
	DurationDays   int
	Approved       bool
	CreatedAt      time.Time
}

type Filter struct {
	OwnerID  string
	Name     string
	Approved *bool

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
