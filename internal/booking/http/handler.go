package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/booking"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/response"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) booking.Actor {
	return booking.Actor{
		UserID: auth.GetUserID(c),
		Role:   user.Role(auth.GetUserRole(c)),
	}
}

func (h *Handler) Create(c *gin.Context) {
	// Owners book as travelers through a tourist account; only travelers and
	// admins create bookings.
	if role := user.Role(auth.GetUserRole(c)); role != user.RoleTourist && role != user.RoleAdmin {
		response.Error(c, booking.ErrPermissionDenied)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err.Error())
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.ValidationError(c, "invalid start_date", err.Error())
		return
	}

	adults := 1
	if req.Adults != nil {
		adults = *req.Adults
	}

	create := booking.CreateRequest{
		UserID:            auth.GetUserID(c),
		TourID:            req.TourID,
		VehicleID:         req.VehicleID,
		PackageID:         req.PackageID,
		StartDate:         startDate,
		Adults:            adults,
		Children:          req.Children,
		TotalPrice:        req.TotalPrice,
		CommissionPercent: req.CommissionPercent,
		PaidAmount:        req.PaidAmount,
		Notes:             req.Notes,
	}

	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			response.ValidationError(c, "invalid end_date", err.Error())
			return
		}
		create.EndDate = &end
	}
	if req.PaymentMethod != nil {
		pm := booking.PaymentMethod(*req.PaymentMethod)
		create.PaymentMethod = &pm
	}
	if req.PaidAt != nil {
		paidAt, err := time.Parse(dateLayout, *req.PaidAt)
		if err != nil {
			response.ValidationError(c, "invalid paid_at", err.Error())
			return
		}
		create.PaidAt = &paidAt
	}

	// created_by records which account submitted the booking.
	actorID := auth.GetUserID(c)
	create.CreatedBy = &actorID

	b, err := h.service.Create(c.Request.Context(), create)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, "invalid UUID", err.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID, actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ListMine returns the authenticated traveler's own bookings.
func (h *Handler) ListMine(c *gin.Context) {
	h.list(c, func(f *booking.Filter) {
		f.UserID = auth.GetUserID(c)
	})
}

// ListOwned returns bookings whose item is owned by the authenticated owner.
func (h *Handler) ListOwned(c *gin.Context) {
	h.list(c, func(f *booking.Filter) {
		f.OwnerID = auth.GetUserID(c)
	})
}

// ListAll is the admin view across every traveler and owner.
func (h *Handler) ListAll(c *gin.Context) {
	h.list(c, func(f *booking.Filter) {})
}

func (h *Handler) list(c *gin.Context, scope func(*booking.Filter)) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "invalid query parameters", err.Error())
		return
	}
	req.Normalize()

	filter := booking.Filter{
		UserID: req.UserID,
		Status: req.Status,
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	}
	scope(&filter)

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, "invalid UUID", err.Error())
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body", err.Error())
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, actorFrom(c), booking.Status(req.Status), req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, "invalid UUID", err.Error())
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.ID, actorFrom(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, "invalid UUID", err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
