package http

import (
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
)

type CreatePackageRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	Description    *string  `json:"description"`
	PricePerGroup  *float64 `json:"price_per_group" binding:"omitempty,gt=0"`
	PricePerPerson *float64 `json:"price_per_person" binding:"omitempty,gt=0"`
	DurationDays   int      `json:"duration_days" binding:"omitempty,min=1"`
}

type UpdatePackageRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=200"`
	Description    *string  `json:"description"`
	PricePerGroup  *float64 `json:"price_per_group" binding:"omitempty,gt=0"`
	PricePerPerson *float64 `json:"price_per_person" binding:"omitempty,gt=0"`
	DurationDays   *int     `json:"duration_days" binding:"omitempty,min=1"`
	Approved       *bool    `json:"approved"`
}

type ListPackagesRequest struct {
	request.ListParams
	Name     string `form:"name"`
	OwnerID  string `form:"owner_id" binding:"omitempty,uuid"`
	Approved *bool  `form:"approved"`
}

// PackageTag is the minimal package reference embedded in other responses.
type PackageTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PackageResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	PricePerGroup  *float64  `json:"price_per_group"`
	PricePerPerson *float64  `json:"price_per_person"`
	DurationDays   int       `json:"duration_days"`
	Approved       bool      `json:"approved"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewPackageResponse(p *travelpackage.Package) PackageResponse {
	return PackageResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		Name:           p.Name,
		Description:    p.Description,
		PricePerGroup:  p.PricePerGroup,
		PricePerPerson: p.PricePerPerson,
		DurationDays:   p.DurationDays,
		Approved:       p.Approved,
		CreatedAt:      p.CreatedAt,
	}
}
