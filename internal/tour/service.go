package tour

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name           string
	Description    *string
	PricePerPerson float64
	DurationDays   int
}

type UpdateRequest struct {
	Name           *string
	Description    *string
	PricePerPerson *float64
	DurationDays   *int
	IsActive       *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Tour, error)
	GetByID(ctx context.Context, id string) (*Tour, error)
	List(ctx context.Context, filter Filter) ([]*Tour, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Tour, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Tour, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerPerson <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.DurationDays < 1 {
		req.DurationDays = 1
	}

	t := &Tour{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Tour, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Tour, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Tour, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		t.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.PricePerPerson != nil {
		if *req.PricePerPerson <= 0 {
			return nil, ErrInvalidPrice
		}
		t.PricePerPerson = *req.PricePerPerson
	}
	if req.DurationDays != nil && *req.DurationDays >= 1 {
		t.DurationDays = *req.DurationDays
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
