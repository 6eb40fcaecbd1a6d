package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusInactive    VehicleStatus = "INACTIVE"
)

type VehicleType string

const (
	VehicleTypeCar     VehicleType = "CAR"
	VehicleTypeBike    VehicleType = "BIKE"
	VehicleTypeScooter VehicleType = "SCOOTER"
	VehicleTypeBicycle VehicleType = "BICYCLE"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeCNG      FuelType = "CNG"
)

type Vehicle struct {
	ID           int64            `json:"id"`
	OwnerID      int64            `json:"owner_id"`
	LicensePlate string           `json:"license_plate"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Year         int32            `json:"year"`
	Color        string           `json:"color"`
	VehicleType  VehicleType      `json:"vehicle_type"`
	FuelType     FuelType         `json:"fuel_type"`
	SeatCount    int32            `json:"seat_count"`
	DailyRate    decimal.Decimal  `json:"daily_rate"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	Location     string           `json:"location"`
	Description  string           `json:"description,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	Status       VehicleStatus    `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// VehicleFilter narrows vehicle searches. Zero values mean "no filter".
type VehicleFilter struct {
	VehicleType  VehicleType
	FuelType     FuelType
	Location     string
	MinSeatCount int32
	MaxDailyRate *decimal.Decimal
	Status       VehicleStatus
}
