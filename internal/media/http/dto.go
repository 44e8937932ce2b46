package http

import (
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/media"
)

type UploadMediaRequest struct {
	TourID    *string `form:"tour_id" binding:"omitempty,uuid"`
	VehicleID *string `form:"vehicle_id" binding:"omitempty,uuid"`
	PackageID *string `form:"package_id" binding:"omitempty,uuid"`
}

type ListMediaRequest struct {
	TourID    *string `form:"tour_id" binding:"omitempty,uuid"`
	VehicleID *string `form:"vehicle_id" binding:"omitempty,uuid"`
	PackageID *string `form:"package_id" binding:"omitempty,uuid"`
}

type MediaResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewMediaResponse(m *media.Media) MediaResponse {
	resp := MediaResponse{
		ID:          m.ID,
		URL:         media.URL(m.ID),
		Filename:    m.Filename,
		ContentType: m.ContentType,
		Size:        m.Size,
		CreatedAt:   m.CreatedAt,
	}
	if m.ThumbnailPath != nil {
		thumb := media.ThumbnailURL(m.ID)
		resp.ThumbnailURL = &thumb
	}
	return resp
}
