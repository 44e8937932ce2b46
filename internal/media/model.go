package media

import (
	"net/http"
	"time"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "media not found")
	ErrNoThumbnail      = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrNotAnImage       = apperror.New(http.StatusBadRequest, "only image uploads are accepted")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Media is an uploaded photo attached to a catalog item. At most one of the
// item references is set; an unattached photo is allowed (e.g. profile use).
type Media struct {
	ID            string    `json:"id"`
	UploaderID    string    `json:"uploader_id"`
	TourID        *string   `json:"tour_id"`
	VehicleID     *string   `json:"vehicle_id"`
	PackageID     *string   `json:"package_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public path for the full-size image.
func URL(id string) string {
	return "/v1/media/" + id
}

// ThumbnailURL returns the public path for the thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/media/" + id + "/thumbnail"
}

// Attachment names the catalog item a new upload belongs to.
type Attachment struct {
	TourID    *string
	VehicleID *string
	PackageID *string
}
