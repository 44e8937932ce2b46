package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/request"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/response"
	"github.com/ceylontrails/travel-booking-backend/internal/tour"
)

type Handler struct {
	service tour.Service
}

func NewHandler(service tour.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.Create(c.Request.Context(), tour.CreateRequest{
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrEmptyName), errors.Is(err, tour.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tour"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewTourResponse(t))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, tour.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get tour"})
		return
	}

	c.JSON(http.StatusOK, NewTourResponse(t))
}

func (h *Handler) List(c *gin.Context) {
	var req ListToursRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	tours, total, err := h.service.List(c.Request.Context(), tour.Filter{
		Name:     req.Name,
		IsActive: req.IsActive,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tours"})
		return
	}

	items := make([]TourResponse, len(tours))
	for i, t := range tours {
		items[i] = NewTourResponse(t)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.Limit, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.Update(c.Request.Context(), uri.ID, tour.UpdateRequest{
		Name:           req.Name,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		DurationDays:   req.DurationDays,
		IsActive:       req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
		case errors.Is(err, tour.ErrEmptyName), errors.Is(err, tour.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update tour"})
		}
		return
	}

	c.JSON(http.StatusOK, NewTourResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, tour.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tour"})
		return
	}

	c.Status(http.StatusNoContent)
}
