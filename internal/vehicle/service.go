package vehicle

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	VehicleType *string
	Seats       *int
	PricePerDay float64
}

type UpdateRequest struct {
	Name        *string
	VehicleType *string
	Seats       *int
	PricePerDay *float64
	Approved    *bool // admin only
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Vehicle, error)
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context, filter Filter) ([]*Vehicle, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Vehicle, error)
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Vehicle, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerDay <= 0 {
		return nil, ErrInvalidPrice
	}

	v := &Vehicle{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		VehicleType: req.VehicleType,
		Seats:       req.Seats,
		PricePerDay: req.PricePerDay,
		// New listings await admin review.
		Approved: false,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Vehicle, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && v.OwnerID != actorID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.VehicleType != nil {
		v.VehicleType = req.VehicleType
	}
	if req.Seats != nil {
		v.Seats = req.Seats
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay <= 0 {
			return nil, ErrInvalidPrice
		}
		v.PricePerDay = *req.PricePerDay
	}
	if req.Approved != nil {
		// Only admins flip the approval flag.
		if !isAdmin {
			return nil, ErrPermissionDenied
		}
		v.Approved = *req.Approved
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && v.OwnerID != actorID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
