package http

import (
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/booking"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	TourID    *string `json:"tour_id" binding:"omitempty,uuid"`
	VehicleID *string `json:"vehicle_id" binding:"omitempty,uuid"`
	PackageID *string `json:"package_id" binding:"omitempty,uuid"`

	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`

	// Travelers are optional; an absent adults field books for one adult,
	// while an explicit zero keeps the one-fare pricing floor in play.
	Adults   *int `json:"adults" binding:"omitempty,gte=0"`
	Children int  `json:"children" binding:"omitempty,gte=0"`

	TotalPrice        *float64 `json:"total_price" binding:"omitempty,gte=0"`
	CommissionPercent *float64 `json:"commission_percent" binding:"omitempty,gte=0,lte=100"`

	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=cash online"`
	PaidAmount    float64 `json:"paid_amount" binding:"omitempty,gte=0"`
	PaidAt        *string `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
	Note   *string `json:"notes" binding:"omitempty,max=2000"`
}

type ListBookingsRequest struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Search string `form:"search"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	ReferenceCode string  `json:"reference_code"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	TourID        *string `json:"tour_id"`
	VehicleID     *string `json:"vehicle_id"`
	PackageID     *string `json:"package_id"`
	ItemName      *string `json:"item_name"`

	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`

	TotalPrice        float64 `json:"total_price"`
	CommissionPercent float64 `json:"commission_percent"`
	AdminEarnings     float64 `json:"admin_earnings"`
	OwnerEarnings     float64 `json:"owner_earnings"`

	Status        string     `json:"status"`
	PaymentMethod *string    `json:"payment_method"`
	PaidAmount    float64    `json:"paid_amount"`
	PaidAt        *time.Time `json:"paid_at"`

	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                b.ID,
		ReferenceCode:     b.ReferenceCode,
		UserID:            b.UserID,
		UserName:          b.UserName,
		TourID:            b.TourID,
		VehicleID:         b.VehicleID,
		PackageID:         b.PackageID,
		ItemName:          b.ItemName,
		StartDate:         b.StartDate.Format(dateLayout),
		Adults:            b.Adults,
		Children:          b.Children,
		TotalPrice:        b.TotalPrice,
		CommissionPercent: b.CommissionPercent,
		AdminEarnings:     b.AdminEarnings,
		OwnerEarnings:     b.OwnerEarnings,
		Status:            string(b.Status),
		PaidAmount:        b.PaidAmount,
		PaidAt:            b.PaidAt,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
	if b.EndDate != nil {
		end := b.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	if b.PaymentMethod != nil {
		pm := string(*b.PaymentMethod)
		resp.PaymentMethod = &pm
	}
	return resp
}
