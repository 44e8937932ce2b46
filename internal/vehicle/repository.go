package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context, filter Filter) ([]*Vehicle, int, error)
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Vehicle) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vehicles").
		Columns("owner_id", "name", "vehicle_type", "seats", "price_per_day", "approved").
		Values(v.OwnerID, v.Name, v.VehicleType, v.Seats, v.PricePerDay, v.Approved).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create vehicle query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"v.id", "v.owner_id", "COALESCE(u.display_name, u.email)",
		"v.name", "v.vehicle_type", "v.seats", "v.price_per_day", "v.approved", "v.created_at",
	).
		From("public.vehicles v").
		Join("public.users u ON v.owner_id = u.id").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vehicle query failed: %w", err)
	}

	var v Vehicle
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.OwnerID, &v.OwnerName,
		&v.Name, &v.VehicleType, &v.Seats, &v.PricePerDay, &v.Approved, &v.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Vehicle, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.owner_id", "COALESCE(u.display_name, u.email)",
		"v.name", "v.vehicle_type", "v.seats", "v.price_per_day", "v.approved", "v.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.vehicles v").
		Join("public.users u ON v.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"v.owner_id": filter.OwnerID})
	}
	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"v.name": "%" + filter.Name + "%"})
	}
	if filter.Approved != nil {
		query = query.Where(squirrel.Eq{"v.approved": *filter.Approved})
	}

	orderBy := "v.created_at"
	if filter.SortBy != "" {
		orderBy = "v." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	query = query.Limit(uint64(filter.Limit)).Offset(uint64((filter.Page - 1) * filter.Limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list vehicles query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles failed: %w", err)
	}
	defer rows.Close()

	var vehicles []*Vehicle
	var total int

	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.OwnerName,
			&v.Name, &v.VehicleType, &v.Seats, &v.PricePerDay, &v.Approved, &v.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan vehicle failed: %w", err)
		}
		vehicles = append(vehicles, &v)
	}

	return vehicles, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, v *Vehicle) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.vehicles").
		Set("name", v.Name).
		Set("vehicle_type", v.VehicleType).
		Set("seats", v.Seats).
		Set("price_per_day", v.PricePerDay).
		Set("approved", v.Approved).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update vehicle query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vehicle failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete vehicle query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete vehicle failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
