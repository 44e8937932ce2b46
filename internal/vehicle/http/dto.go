package http

import (
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
)

type CreateVehicleRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	VehicleType *string `json:"vehicle_type" binding:"omitempty,max=50"`
	Seats       *int    `json:"seats" binding:"omitempty,min=1"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
}

type UpdateVehicleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	VehicleType *string  `json:"vehicle_type" binding:"omitempty,max=50"`
	Seats       *int     `json:"seats" binding:"omitempty,min=1"`
	PricePerDay *float64 `json:"price_per_day" binding:"omitempty,gt=0"`
	Approved    *bool    `json:"approved"`
}

type ListVehiclesRequest struct {
	request.ListParams
	Name     string `form:"name"`
	OwnerID  string `form:"owner_id" binding:"omitempty,uuid"`
	Approved *bool  `form:"approved"`
}

// VehicleTag is the minimal vehicle reference embedded in other responses.
type VehicleTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VehicleResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	VehicleType *string   `json:"vehicle_type"`
	Seats       *int      `json:"seats"`
	PricePerDay float64   `json:"price_per_day"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		Name:        v.Name,
		VehicleType: v.VehicleType,
		Seats:       v.Seats,
		PricePerDay: v.PricePerDay,
		Approved:    v.Approved,
		CreatedAt:   v.CreatedAt,
	}
}
