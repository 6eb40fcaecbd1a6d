package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/repository"

	"github.com/shopspring/decimal"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, booking_reference, user_id, vehicle_id, start_date, end_date,
	pickup_location, return_location, total_amount, security_deposit, status, notes,
	cancelled_at, cancellation_reason, actual_return_date, late_fee, damage_charges,
	created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (booking_reference, user_id, vehicle_id, start_date, end_date,
	          pickup_location, return_location, total_amount, security_deposit, status, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		b.BookingReference, b.UserID, b.VehicleID, b.StartDate, b.EndDate,
		b.PickupLocation, b.ReturnLocation, b.TotalAmount, b.SecurityDeposit,
		b.Status, b.Notes, now, now,
	).Scan(&b.ID)
	if err != nil {
		return mapConstraintError(err)
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`
	return r.scanBooking(r.db.QueryRowContext(ctx, query, reference))
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	_, err := r.db.ExecContext(ctx, bookingUpdateQuery, bookingUpdateArgs(b)...)
	return mapConstraintError(err)
}

const bookingUpdateQuery = `UPDATE bookings SET status=$1, pickup_location=$2, return_location=$3, notes=$4,
	cancelled_at=$5, cancellation_reason=$6, actual_return_date=$7, late_fee=$8, damage_charges=$9,
	updated_at=$10 WHERE id=$11`

func bookingUpdateArgs(b *domain.Booking) []interface{} {
	return []interface{}{
		b.Status, b.PickupLocation, b.ReturnLocation, b.Notes,
		b.CancelledAt, b.CancellationReason, b.ActualReturnDate,
		nullDecimal(b.LateFee), nullDecimal(b.DamageCharges),
		time.Now(), b.ID,
	}
}

// UpdateWithVehicle writes the booking and the vehicle status in one
// transaction so a vehicle is never left RENTED without an active booking
// (or the reverse) if one of the writes fails.
func (r *bookingRepository) UpdateWithVehicle(ctx context.Context, b *domain.Booking, v *domain.Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, bookingUpdateQuery, bookingUpdateArgs(b)...); err != nil {
		_ = tx.Rollback()
		return mapConstraintError(err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE vehicles SET status=$1, updated_at=$2 WHERE id=$3`,
		v.Status, time.Now(), v.ID,
	); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int64, page, pageSize int32) ([]domain.Booking, int64, error) {
	return r.list(ctx, `WHERE user_id = $1`, []interface{}{userID}, page, pageSize)
}

func (r *bookingRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int64, error) {
	return r.list(ctx, ``, nil, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Booking, int64, error) {
	var count int64
	countQuery := `SELECT count(*) FROM bookings ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM bookings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) FindConflicts(ctx context.Context, vehicleID int64, start, end time.Time) ([]domain.Booking, error) {
	// Closed-interval overlap: a booking that merely touches an endpoint
	// still blocks, so handoffs never share a moment.
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE vehicle_id = $1 AND start_date <= $3 AND end_date >= $2
	          AND status IN ('CONFIRMED', 'ACTIVE')`
	rows, err := r.db.QueryContext(ctx, query, vehicleID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) FindNeedingActivation(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'CONFIRMED' AND start_date <= $1`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) FindOverdue(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = 'ACTIVE' AND end_date <= $1`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *bookingRepository) scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var notes, cancellationReason sql.NullString
	var lateFee, damageCharges decimal.NullDecimal
	err := row.Scan(
		&b.ID, &b.BookingReference, &b.UserID, &b.VehicleID, &b.StartDate, &b.EndDate,
		&b.PickupLocation, &b.ReturnLocation, &b.TotalAmount, &b.SecurityDeposit,
		&b.Status, &notes, &b.CancelledAt, &cancellationReason, &b.ActualReturnDate,
		&lateFee, &damageCharges, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	b.Notes = notes.String
	b.CancellationReason = cancellationReason.String
	if lateFee.Valid {
		b.LateFee = &lateFee.Decimal
	}
	if damageCharges.Valid {
		b.DamageCharges = &damageCharges.Decimal
	}
	return b, nil
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	repo := &bookingRepository{}
	var bookings []domain.Booking
	for rows.Next() {
		b, err := repo.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
