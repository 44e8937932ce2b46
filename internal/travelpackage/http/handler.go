package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/response"
	"github.com/ceylontrails/travel-booking-backend/internal/travelpackage"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
)

type Handler struct {
	service travelpackage.Service
}

func NewHandler(service travelpackage.Service) *Handler {
	return &Handler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == string(user.RoleAdmin)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), travelpackage.CreateRequest{
		OwnerID:        auth.GetUserID(c),
		Name:           req.Name,
		Description:    req.Description,
		PricePerGroup:  req.PricePerGroup,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, travelpackage.ErrEmptyName),
			errors.Is(err, travelpackage.ErrNoPrice),
			errors.Is(err, travelpackage.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create package"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewPackageResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, travelpackage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get package"})
		return
	}

	c.JSON(http.StatusOK, NewPackageResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	var req ListPackagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := travelpackage.Filter{
		OwnerID:  req.OwnerID,
		Name:     req.Name,
		Approved: req.Approved,
		Page:     req.Page,
		Limit:    req.Limit,
	}

	// Same visibility rule as vehicles: unapproved listings stay private, and
	// anonymous callers never get the unfiltered view.
	actorID := auth.GetUserID(c)
	ownListing := actorID != "" && filter.OwnerID == actorID
	if !isAdmin(c) && !ownListing {
		approved := true
		filter.Approved = &approved
	}

	packages, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list packages"})
		return
	}

	items := make([]PackageResponse, len(packages))
	for i, p := range packages {
		items[i] = NewPackageResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, travelpackage.UpdateRequest{
		Name:           req.Name,
		Description:    req.Description,
		PricePerGroup:  req.PricePerGroup,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
		Approved:       req.Approved,
	}, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, travelpackage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		case errors.Is(err, travelpackage.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, travelpackage.ErrEmptyName),
			errors.Is(err, travelpackage.ErrNoPrice),
			errors.Is(err, travelpackage.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update package"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPackageResponse(p))
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
		case errors.Is(err, travelpackage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
		case errors.Is(err, travelpackage.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete package"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
