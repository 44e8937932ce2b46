package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ceylontrails/travel-booking-backend/internal/auth"
	"github.com/ceylontrails/travel-booking-backend/internal/media"
	"github.com/ceylontrails/travel-booking-backend/internal/pkg/response"
	"github.com/ceylontrails/travel-booking-backend/internal/user"
)

// maxUploadBytes caps a single photo upload.
const maxUploadBytes = 10 << 20

type Handler struct {
	service media.Service
}

func NewHandler(service media.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	var req UploadMediaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "invalid query parameters", err.Error())
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "file field is required", err.Error())
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	m, err := h.service.Upload(c.Request.Context(), header, auth.GetUserID(c), media.Attachment{
		TourID:    req.TourID,
		VehicleID: req.VehicleID,
		PackageID: req.PackageID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMediaResponse(m))
}

func (h *Handler) List(c *gin.Context) {
	var req ListMediaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "invalid query parameters", err.Error())
		return
	}

	items, err := h.service.ListByItem(c.Request.Context(), media.Attachment{
		TourID:    req.TourID,
		VehicleID: req.VehicleID,
		PackageID: req.PackageID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]MediaResponse, len(items))
	for i, m := range items {
		out[i] = NewMediaResponse(m)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Serve(c *gin.Context) {
	stream, m, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", m.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) ServeThumbnail(c *gin.Context) {
	stream, m, err := h.service.DownloadThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"_thumb.jpg\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) Delete(c *gin.Context) {
	isAdmin := auth.GetUserRole(c) == string(user.RoleAdmin)
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), auth.GetUserID(c), isAdmin); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
