package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// bookingSelectColumns joins in the traveler name and the referenced item's
// name so callers never need a second lookup for display.
var bookingSelectColumns = []string{
	"b.id", "b.reference_code", "b.user_id", "COALESCE(u.display_name, u.email)",
	"b.tour_id", "b.vehicle_id", "b.package_id",
	"COALESCE(t.name, v.name, p.name)",
	"b.vehicle_owner_id", "b.package_owner_id",
	"b.start_date", "b.end_date", "b.adults", "b.children",
	"b.total_price", "b.commission_percent", "b.admin_earnings", "b.owner_earnings",
	"b.status", "b.payment_method", "b.paid_amount", "b.paid_at",
	"b.notes", "b.created_by", "b.created_at", "b.updated_at",
}

func bookingBase(psql squirrel.StatementBuilderType, columns []string) squirrel.SelectBuilder {
	return psql.Select(columns...).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		LeftJoin("public.tours t ON b.tour_id = t.id").
		LeftJoin("public.vehicles v ON b.vehicle_id = v.id").
		LeftJoin("public.packages p ON b.package_id = p.id")
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"reference_code", "user_id",
			"tour_id", "vehicle_id", "package_id",
			"vehicle_owner_id", "package_owner_id",
			"start_date", "end_date", "adults", "children",
			"total_price", "commission_percent", "admin_earnings", "owner_earnings",
			"status", "payment_method", "paid_amount", "paid_at",
			"notes", "created_by",
		).
		Values(
			b.ReferenceCode, b.UserID,
			b.TourID, b.VehicleID, b.PackageID,
			b.VehicleOwnerID, b.PackageOwnerID,
			b.StartDate, b.EndDate, b.Adults, b.Children,
			b.TotalPrice, b.CommissionPercent, b.AdminEarnings, b.OwnerEarnings,
			b.Status, b.PaymentMethod, b.PaidAmount, b.PaidAt,
			b.Notes, b.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrReferenceClash
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := bookingBase(psql, bookingSelectColumns).
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanOne(r.pool.QueryRow(ctx, query, args...), nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns := append(append([]string{}, bookingSelectColumns...), "count(*) OVER() as total_count")
	query := bookingBase(psql, columns)

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.OwnerID != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"b.vehicle_owner_id": filter.OwnerID},
			squirrel.Eq{"b.package_owner_id": filter.OwnerID},
		})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"b.reference_code": "%" + filter.Search + "%"})
	}

	query = query.OrderBy("b.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	query = query.Limit(uint64(filter.Limit)).Offset(uint64((filter.Page - 1) * filter.Limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanOne(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("total_price", b.TotalPrice).
		Set("commission_percent", b.CommissionPercent).
		Set("admin_earnings", b.AdminEarnings).
		Set("owner_earnings", b.OwnerEarnings).
		Set("payment_method", b.PaymentMethod).
		Set("paid_amount", b.PaidAmount).
		Set("paid_at", b.PaidAt).
		Set("notes", b.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanOne scans a booking row. total is non-nil when the query carried the
// windowed count column.
func scanOne(row pgx.Row, total *int) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.ReferenceCode, &b.UserID, &b.UserName,
		&b.TourID, &b.VehicleID, &b.PackageID,
		&b.ItemName,
		&b.VehicleOwnerID, &b.PackageOwnerID,
		&b.StartDate, &b.EndDate, &b.Adults, &b.Children,
		&b.TotalPrice, &b.CommissionPercent, &b.AdminEarnings, &b.OwnerEarnings,
		&b.Status, &b.PaymentMethod, &b.PaidAmount, &b.PaidAt,
		&b.Notes, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}
