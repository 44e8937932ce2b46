package tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, t *Tour) error
	GetByID(ctx context.Context, id string) (*Tour, error)
	List(ctx context.Context, filter Filter) ([]*Tour, int, error)
	Update(ctx context.Context, t *Tour) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, t *Tour) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.tours").
		Columns("name", "description", "price_per_person", "duration_days", "is_active").
		Values(t.Name, t.Description, t.PricePerPerson, t.DurationDays, t.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create tour query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Tour, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "description", "price_per_person", "duration_days", "is_active", "created_at",
	).
		From("public.tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tour query failed: %w", err)
	}

	var t Tour
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Description, &t.PricePerPerson, &t.DurationDays, &t.IsActive, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tour failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Tour, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "description", "price_per_person", "duration_days", "is_active", "created_at",
		"count(*) OVER() as total_count",
	).From("public.tours")

	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	orderBy := "created_at"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
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
		return nil, 0, fmt.Errorf("build list tours query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tours failed: %w", err)
	}
	defer rows.Close()

	var tours []*Tour
	var total int

	for rows.Next() {
		var t Tour
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.PricePerPerson, &t.DurationDays, &t.IsActive, &t.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan tour failed: %w", err)
		}
		tours = append(tours, &t)
	}

	return tours, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, t *Tour) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.tours").
		Set("name", t.Name).
		Set("description", t.Description).
		Set("price_per_person", t.PricePerPerson).
		Set("duration_days", t.DurationDays).
		Set("is_active", t.IsActive).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update tour query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tour failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.tours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete tour query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete tour failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
