package http

import (
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/tour"
)

type CreateTourRequest struct {
	Name           string  `json:"name" binding:"required,max=200"`
	Description    *string `json:"description"`
	PricePerPerson float64 `json:"price_per_person" binding:"required,gt=0"`
	DurationDays   int     `json:"duration_days" binding:"omitempty,min=1"`
}

type UpdateTourRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=200"`
	Description    *string  `json:"description"`
	PricePerPerson *float64 `json:"price_per_person" binding:"omitempty,gt=0"`
	DurationDays   *int     `json:"duration_days" binding:"omitempty,min=1"`
	IsActive       *bool    `json:"is_active"`
}

type ListToursRequest struct {
	request.ListParams
	Name     string `form:"name"`
	IsActive *bool  `form:"is_active"`
}

// TourTag is the minimal tour reference embedded in other responses.
type TourTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TourResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	PricePerPerson float64   `json:"price_per_person"`
	DurationDays   int       `json:"duration_days"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewTourResponse(t *tour.Tour) TourResponse {
	return TourResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		PricePerPerson: t.PricePerPerson,
		DurationDays:   t.DurationDays,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
	}
}
