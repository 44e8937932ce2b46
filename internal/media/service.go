package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ceylontrails/travel-booking-backend/internal/pkg/storage"
)

const (
	thumbWidth  = 320
	thumbHeight = 320
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, uploaderID string, attach Attachment) (*Media, error)
	Get(ctx context.Context, id string) (*Media, error)
	ListByItem(ctx context.Context, attach Attachment) ([]*Media, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Media, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error)
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, uploaderID string, attach Attachment) (*Media, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffer the whole image so it can be read twice, once for the original
	// and once for the thumbnail. Uploads are size-capped at the handler.
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}

	mediaID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Shard by the first two characters of the ID to keep directories small.
	shard := mediaID[:2]
	storagePath := fmt.Sprintf("media/%s/%s%s", shard, mediaID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("save media failed: %w", err)
	}

	// Thumbnail generation is best effort; a broken image still uploads.
	var thumbnailPath *string
	if thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(raw), thumbWidth, thumbHeight); err == nil {
		tPath := fmt.Sprintf("media/%s/%s_thumb.jpg", shard, mediaID)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	m := &Media{
		ID:            mediaID,
		UploaderID:    uploaderID,
		TourID:        attach.TourID,
		VehicleID:     attach.VehicleID,
		PackageID:     attach.PackageID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return m, nil
}

func (s *service) Get(ctx context.Context, id string) (*Media, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByItem(ctx context.Context, attach Attachment) ([]*Media, error) {
	return s.repo.ListByItem(ctx, attach)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, m.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve media failed: %w", err)
	}
	return stream, m, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Media, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if m.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *m.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}
	return stream, m, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && m.UploaderID != actorID {
		return ErrPermissionDenied
	}

	// Storage cleanup is best effort; the row is the source of truth.
	_ = s.storage.Delete(ctx, m.StoragePath)
	if m.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *m.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
