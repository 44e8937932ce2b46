package travelpackage

import (
	"context"
	"strings"
)

type CreateRequest struct {
	OwnerID        string
	Name           string
	Description    *string
	PricePerGroup  *float64
	PricePerPerson *float64
	DurationDays   int
}

type UpdateRequest struct {
	Name           *string
	Description    *string
	PricePerGroup  *float64
	PricePerPerson *float64
	DurationDays   *int
	Approved       *bool // admin only
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Package, error)
	GetByID(ctx context.Context, id string) (*Package, error)
	List(ctx context.Context, filter Filter) ([]*Package, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Package, error)
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validPrices(group, person *float64) error {
	if group == nil && person == nil {
		return ErrNoPrice
	}
	if group != nil && *group <= 0 {
		return ErrInvalidPrice
	}
	if person != nil && *person <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Package, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if err := validPrices(req.PricePerGroup, req.PricePerPerson); err != nil {
		return nil, err
	}
	if req.DurationDays < 1 {
		req.DurationDays = 1
	}

	p := &Package{
		OwnerID:        req.OwnerID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		PricePerGroup:  req.PricePerGroup,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
		Approved:       false,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Package, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Package, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Package, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && p.OwnerID != actorID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.PricePerGroup != nil {
		p.PricePerGroup = req.PricePerGroup
	}
	if req.PricePerPerson != nil {
		p.PricePerPerson = req.PricePerPerson
	}
	if err := validPrices(p.PricePerGroup, p.PricePerPerson); err != nil {
		return nil, err
	}
	if req.DurationDays != nil && *req.DurationDays >= 1 {
		p.DurationDays = *req.DurationDays
	}
	if req.Approved != nil {
		if !isAdmin {
			return nil, ErrPermissionDenied
		}
		p.Approved = *req.Approved
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && p.OwnerID != actorID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
