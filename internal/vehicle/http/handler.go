package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/response"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
	"github.com/ceylontrails/travel-booking-backend/internal/vehicle"
)

type Handler struct {
	service vehicle.Service
}

func NewHandler(service vehicle.Service) *Handler {
	return &Handler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == string(user.RoleAdmin)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), vehicle.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        req.Name,
		VehicleType: req.VehicleType,
		Seats:       req.Seats,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrEmptyName), errors.Is(err, vehicle.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vehicle"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewVehicleResponse(v))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get vehicle"})
		return
	}

	c.JSON(http.StatusOK, NewVehicleResponse(v))
}

func (h *Handler) List(c *gin.Context) {
	var req ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := vehicle.Filter{
		OwnerID:  req.OwnerID,
		Name:     req.Name,
		Approved: req.Approved,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	// Travelers and anonymous callers only ever see approved inventory; the
	// unfiltered view is reserved for admins and the owner's own listings.
	// Overrides any caller-supplied approved filter.
	actorID := auth.GetUserID(c)
	ownListing := actorID != "" && filter.OwnerID == actorID
	if !isAdmin(c) && !ownListing {
		approved := true
		filter.Approved = &approved
	}

	vehicles, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vehicles"})
		return
	}

	items := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		items[i] = NewVehicleResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Update(c.Request.Context(), uri.ID, vehicle.UpdateRequest{
		Name:        req.Name,
		VehicleType: req.VehicleType,
		Seats:       req.Seats,
		PricePerDay: req.PricePerDay,
		Approved:    req.Approved,
	}, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		case errors.Is(err, vehicle.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, vehicle.ErrEmptyName), errors.Is(err, vehicle.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vehicle"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVehicleResponse(v))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		case errors.Is(err, vehicle.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vehicle"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
