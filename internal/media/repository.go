package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Media) error
	GetByID(ctx context.Context, id string) (*Media, error)
	ListByItem(ctx context.Context, attach Attachment) ([]*Media, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const mediaColumns = "id, uploader_id, tour_id, vehicle_id, package_id, filename, storage_path, thumbnail_path, content_type, size, created_at"

func (r *pgxRepository) Create(ctx context.Context, m *Media) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.media").
		Columns("id", "uploader_id", "tour_id", "vehicle_id", "package_id",
			"filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		Values(m.ID, m.UploaderID, m.TourID, m.VehicleID, m.PackageID,
			m.Filename, m.StoragePath, m.ThumbnailPath, m.ContentType, m.Size, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create media query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create media failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Media, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(mediaColumns).
		From("public.media").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get media query failed: %w", err)
	}

	var m Media
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.UploaderID, &m.TourID, &m.VehicleID, &m.PackageID,
		&m.Filename, &m.StoragePath, &m.ThumbnailPath, &m.ContentType, &m.Size, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get media failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) ListByItem(ctx context.Context, attach Attachment) ([]*Media, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(mediaColumns).
		From("public.media").
		OrderBy("created_at DESC")

	switch {
	case attach.TourID != nil:
		query = query.Where(squirrel.Eq{"tour_id": *attach.TourID})
	case attach.VehicleID != nil:
		query = query.Where(squirrel.Eq{"vehicle_id": *attach.VehicleID})
	case attach.PackageID != nil:
		query = query.Where(squirrel.Eq{"package_id": *attach.PackageID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list media query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list media failed: %w", err)
	}
	defer rows.Close()

	var items []*Media
	for rows.Next() {
		var m Media
		if err := rows.Scan(
			&m.ID, &m.UploaderID, &m.TourID, &m.VehicleID, &m.PackageID,
			&m.Filename, &m.StoragePath, &m.ThumbnailPath, &m.ContentType, &m.Size, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan media failed: %w", err)
		}
		items = append(items, &m)
	}

	return items, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.media").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete media query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete media failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
