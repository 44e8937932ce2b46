package vehicle

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("vehicle not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidPrice     = errors.New("price_per_day must be positive")
	ErrPermissionDenied = errors.New("permission denied")
)

// Vehicle is an owner-listed rentable vehicle.
type Vehicle struct {
	ID          string
	OwnerID     string
	OwnerName   string
	Name        string
	VehicleType *string // e.g. car, van, tuk-tuk
	Seats       *int
	PricePerDay float64
	// Approved vehicles are visible to travelers; set by an admin after review.
	Approved  bool
	CreatedAt time.Time
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
