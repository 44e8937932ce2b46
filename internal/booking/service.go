package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/tour"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
)

// referenceAttempts bounds the retry loop when the generated reference code
// collides with an existing one.
const referenceAttempts = 3

type CreateRequest struct {
	UserID    string
	CreatedBy *string

	TourID    *string
	VehicleID *string
	PackageID *string

	StartDate time.Time
	EndDate   *time.Time
	Adults    int
	Children  int

	// TotalPrice is only honored when no item is referenced (fallback pricing).
	TotalPrice        *float64
	CommissionPercent *float64

	PaymentMethod *PaymentMethod
	PaidAmount    float64
	PaidAt        *time.Time

	Notes *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string, actor Actor) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, actor Actor, status Status, note *string) (*Booking, error)
	Cancel(ctx context.Context, id string, actor Actor) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	tourSvc    tour.Service
	vehicleSvc vehicle.Service
	packageSvc travelpackage.Service
	commission *CommissionEngine
}

func NewService(
	repo Repository,
	tourSvc tour.Service,
	vehicleSvc vehicle.Service,
	packageSvc travelpackage.Service,
	commission *CommissionEngine,
) Service {
	return &service{
		repo:       repo,
		tourSvc:    tourSvc,
		vehicleSvc: vehicleSvc,
		packageSvc: packageSvc,
		commission: commission,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	refs := 0
	for _, id := range []*string{req.TourID, req.VehicleID, req.PackageID} {
		if id != nil {
			refs++
		}
	}
	if refs > 1 {
		return nil, ErrMultipleItems
	}

	b := &Booking{
		UserID:        req.UserID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Status:        StatusPending,
		PaymentMethod: req.PaymentMethod,
		PaidAmount:    req.PaidAmount,
		PaidAt:        req.PaidAt,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
	}

	params := TripParams{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Adults:    req.Adults,
		Children:  req.Children,
	}

	// Resolve the referenced item and derive the price. Item resolution fails
	// fast: nothing is written if the reference is dangling.
	var total float64
	var durationDays int
	hasOwner := false

	switch {
	case req.TourID != nil:
		t, err := s.tourSvc.GetByID(ctx, *req.TourID)
		if err != nil {
			if errors.Is(err, tour.ErrNotFound) {
				return nil, ErrTourNotFound
			}
			return nil, err
		}
		b.TourID = req.TourID
		total = TourTotal(t.PricePerPerson, params)
		durationDays = t.DurationDays

	case req.VehicleID != nil:
		v, err := s.vehicleSvc.GetByID(ctx, *req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicle.ErrNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, err
		}
		b.VehicleID = req.VehicleID
		ownerID := v.OwnerID
		b.VehicleOwnerID = &ownerID
		hasOwner = true
		total, err = VehicleTotal(v.PricePerDay, params)
		if err != nil {
			return nil, err
		}

	case req.PackageID != nil:
		p, err := s.packageSvc.GetByID(ctx, *req.PackageID)
		if err != nil {
			if errors.Is(err, travelpackage.ErrNotFound) {
				return nil, ErrPackageNotFound
			}
			return nil, err
		}
		b.PackageID = req.PackageID
		ownerID := p.OwnerID
		b.PackageOwnerID = &ownerID
		hasOwner = true
		total = PackageTotal(p.PricePerGroup, p.PricePerPerson, params)
		durationDays = p.DurationDays

	default:
		// No item referenced: honor the caller-supplied total, or zero.
		if req.TotalPrice != nil {
			total = *req.TotalPrice
		}
	}

	if total < 0 {
		total = 0
	}
	b.TotalPrice = total
	b.CommissionPercent = s.commission.ResolvePercent(req.CommissionPercent, hasOwner)
	s.commission.Apply(b)

	fillEndDate(b, durationDays)

	// The reference code is generated here and never regenerated once the row
	// exists; a unique-constraint clash gets a fresh code and another try.
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		b.ReferenceCode = NewReferenceCode()
		err := s.repo.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrReferenceClash) {
			return nil, err
		}
	}
	return nil, ErrReferenceClash
}

func (s *service) GetByID(ctx context.Context, id string, actor Actor) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.CanView(actor) {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus is the generic admin/owner-facing transition. Any status from
// the enum may be set from any other status once the caller is authorized;
// there is deliberately no transition-graph check on this path (the dedicated
// Cancel operation is the guarded one).
func (s *service) UpdateStatus(ctx context.Context, id string, actor Actor, status Status, note *string) (*Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case user.RoleAdmin:
		// unconditional
	case user.RoleVehicleOwner:
		if !b.ownedBy(actor.UserID) {
			return nil, ErrPermissionDenied
		}
	case user.RoleTourist:
		if b.UserID != actor.UserID {
			return nil, ErrPermissionDenied
		}
	default:
		return nil, ErrPermissionDenied
	}

	b.Status = status
	appendNote(b, note)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel is traveler self-service only: even admins are rejected unless the
// booking is their own. Cancelling an already-cancelled booking is a no-op;
// completed bookings cannot be cancelled.
func (s *service) Cancel(ctx context.Context, id string, actor Actor) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserID != actor.UserID {
		return nil, ErrPermissionDenied
	}

	switch b.Status {
	case StatusCancelled:
		return b, nil
	case StatusCompleted:
		return nil, ErrAlreadyCompleted
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete is the admin-only destructive escape hatch. Normal flows cancel.
func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func appendNote(b *Booking, note *string) {
	if note == nil {
		return
	}
	n := strings.TrimSpace(*note)
	if n == "" {
		return
	}
	if b.Notes == nil || *b.Notes == "" {
		b.Notes = &n
		return
	}
	joined := *b.Notes + "\n" + n
	b.Notes = &joined
}
