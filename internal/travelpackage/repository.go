package travelpackage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Package) error
	GetByID(ctx context.Context, id string) (*Package, error)
	List(ctx context.Context, filter Filter) ([]*Package, int, error)
	Update(ctx context.Context, p *Package) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Package) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.packages").
		Columns("owner_id", "name", "description", "price_per_group", "price_per_person", "duration_days", "approved").
		Values(p.OwnerID, p.Name, p.Description, p.PricePerGroup, p.PricePerPerson, p.DurationDays, p.Approved).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create package query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Package, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"p.id", "p.owner_id", "COALESCE(u.display_name, u.email)",
		"p.name", "p.description", "p.price_per_group", "p.price_per_person",
		"p.duration_days", "p.approved", "p.created_at",
	).
		From("public.packages p").
		Join("public.users u ON p.owner_id = u.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get package query failed: %w", err)
	}

	var p Package
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.OwnerID, &p.OwnerName,
		&p.Name, &p.Description, &p.PricePerGroup, &p.PricePerPerson,
		&p.DurationDays, &p.Approved, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get package failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Package, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"p.id", "p.owner_id", "COALESCE(u.display_name, u.email)",
		"p.name", "p.description", "p.price_per_group", "p.price_per_person",
		"p.duration_days", "p.approved", "p.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.packages p").
		Join("public.users u ON p.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"p.owner_id": filter.OwnerID})
	}
	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"p.name": "%" + filter.Name + "%"})
	}
	if filter.Approved != nil {
		query = query.Where(squirrel.Eq{"p.approved": *filter.Approved})
	}

	orderBy := "p.created_at"
	if filter.SortBy != "" {
		orderBy = "p." + filter.SortBy
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
		return nil, 0, fmt.Errorf("build list packages query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages failed: %w", err)
	}
	defer rows.Close()

	var packages []*Package
	var total int

	for rows.Next() {
		var p Package
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.OwnerName,
			&p.Name, &p.Description, &p.PricePerGroup, &p.PricePerPerson,
			&p.DurationDays, &p.Approved, &p.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan package failed: %w", err)
		}
		packages = append(packages, &p)
	}

	return packages, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, p *Package) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.packages").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price_per_group", p.PricePerGroup).
		Set("price_per_person", p.PricePerPerson).
		Set("duration_days", p.DurationDays).
		Set("approved", p.Approved).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update package query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update package failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.packages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete package query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete package failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
