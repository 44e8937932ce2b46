package tour

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("tour not found")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrInvalidPrice = errors.New("price_per_person must be positive")
)

// Tour is a guided tour offered by the platform itself.
// Tours have no external owner, so bookings against them carry no commission split.
type Tour struct {
	ID             string
	Name           string
	Description    *string
	PricePerPerson float64
	DurationDays   int
	IsActive       bool
	CreatedAt      time.Time
}

type Filter struct {
	Name     string
	IsActive *bool

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
