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

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, owner_id, license_plate, brand, model, vehicle_year, color,
	vehicle_type, fuel_type, seat_count, daily_rate, hourly_rate, location, description,
	image_url, status, created_at, updated_at`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (owner_id, license_plate, brand, model, vehicle_year, color,
	          vehicle_type, fuel_type, seat_count, daily_rate, hourly_rate, location, description,
	          image_url, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		v.OwnerID, v.LicensePlate, v.Brand, v.Model, v.Year, v.Color,
		v.VehicleType, v.FuelType, v.SeatCount, v.DailyRate, nullDecimal(v.HourlyRate),
		v.Location, v.Description, v.ImageURL, v.Status, now, now,
	).Scan(&v.ID)
	if err != nil {
		return err
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	return r.scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, model=$2, vehicle_year=$3, color=$4, vehicle_type=$5,
	          fuel_type=$6, seat_count=$7, daily_rate=$8, hourly_rate=$9, location=$10,
	          description=$11, image_url=$12, status=$13, updated_at=$14 WHERE id=$15`
	_, err := r.db.ExecContext(ctx, query,
		v.Brand, v.Model, v.Year, v.Color, v.VehicleType, v.FuelType, v.SeatCount,
		v.DailyRate, nullDecimal(v.HourlyRate), v.Location, v.Description, v.ImageURL,
		v.Status, time.Now(), v.ID,
	)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	// Soft delete: the vehicle drops out of listings but history keeps it.
	_, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET status=$1, updated_at=$2 WHERE id=$3`,
		domain.VehicleStatusInactive, time.Now(), id,
	)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	return r.list(ctx, `WHERE status <> 'INACTIVE'`, nil, page, pageSize)
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	return r.list(ctx, `WHERE owner_id = $1`, []interface{}{ownerID}, page, pageSize)
}

func (r *vehicleRepository) Search(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	where := `WHERE status <> 'INACTIVE'`
	var args []interface{}
	add := func(clause string, value interface{}) {
		args = append(args, value)
		where += fmt.Sprintf(" AND "+clause, len(args))
	}

	if filter.VehicleType != "" {
		add(`vehicle_type = $%d`, filter.VehicleType)
	}
	if filter.FuelType != "" {
		add(`fuel_type = $%d`, filter.FuelType)
	}
	if filter.Location != "" {
		add(`location ILIKE '%%' || $%d || '%%'`, filter.Location)
	}
	if filter.MinSeatCount > 0 {
		add(`seat_count >= $%d`, filter.MinSeatCount)
	}
	if filter.MaxDailyRate != nil {
		add(`daily_rate <= $%d`, *filter.MaxDailyRate)
	}
	if filter.Status != "" {
		add(`status = $%d`, filter.Status)
	}

	return r.list(ctx, where, args, page, pageSize)
}

func (r *vehicleRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles `+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM vehicles %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		vehicleColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := r.scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var hourlyRate decimal.NullDecimal
	var description, imageURL sql.NullString
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.LicensePlate, &v.Brand, &v.Model, &v.Year, &v.Color,
		&v.VehicleType, &v.FuelType, &v.SeatCount, &v.DailyRate, &hourlyRate,
		&v.Location, &description, &imageURL, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if hourlyRate.Valid {
		v.HourlyRate = &hourlyRate.Decimal
	}
	v.Description = description.String
	v.ImageURL = imageURL.String
	return v, nil
}
