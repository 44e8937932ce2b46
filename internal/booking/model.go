package booking

import (
	"net/http"
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/apperror"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTourNotFound     = apperror.New(http.StatusNotFound, "tour not found")
	ErrVehicleNotFound  = apperror.New(http.StatusNotFound, "vehicle not found")
	ErrPackageNotFound  = apperror.New(http.StatusNotFound, "package not found")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "end date cannot be before start date")
	ErrMultipleItems    = apperror.New(http.StatusBadRequest, "a booking may reference at most one of tour, vehicle, or package")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrAlreadyCompleted = apperror.New(http.StatusBadRequest, "completed bookings cannot be cancelled")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrReferenceClash   = apperror.New(http.StatusConflict, "could not allocate a unique reference code")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known booking status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected out of s.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Booking is the central entity: a traveler's reservation of a tour, vehicle,
// or package, with the derived price and commission split frozen at creation.
type Booking struct {
	ID            string
	ReferenceCode string
	UserID        string
	UserName      string

	// At most one of these is set. None set means the price fell back to the
	// caller-supplied total at creation.
	TourID    *string
	VehicleID *string
	PackageID *string
	ItemName  *string

	// Owner snapshot copied from the item at creation time. Intentionally not
	// refreshed if the underlying vehicle/package later changes hands.
	VehicleOwnerID *string
	PackageOwnerID *string

	StartDate time.Time
	EndDate   *time.Time
	Adults    int
	Children  int

	TotalPrice        float64
	CommissionPercent float64
	AdminEarnings     float64
	OwnerEarnings     float64

	Status Status

	// Payment details are informational only; paid_amount is not reconciled
	// against total_price.
	PaymentMethod *PaymentMethod
	PaidAmount    float64
	PaidAt        *time.Time

	Notes     *string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor identifies who is performing a booking operation.
type Actor struct {
	UserID string
	Role   user.Role
}

// CanView reports whether the actor may read this booking.
func (b *Booking) CanView(actor Actor) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	if b.UserID == actor.UserID {
		return true
	}
	return b.ownedBy(actor.UserID)
}

func (b *Booking) ownedBy(userID string) bool {
	if b.VehicleOwnerID != nil && *b.VehicleOwnerID == userID {
		return true
	}
	return b.PackageOwnerID != nil && *b.PackageOwnerID == userID
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID  string
	OwnerID string // matches either owner snapshot field
	Status  string
	Search  string // matches reference_code

	Page  int
	Limit int
}
