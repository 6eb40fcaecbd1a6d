package service

import (
	"context"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error {
	if !actor.IsAdmin() {
		return domain.ErrAccessDenied
	}
	vehicle.OwnerID = actor.UserID
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return err
	}
	logger.Info("Added vehicle", "vehicle_id", vehicle.ID, "license_plate", vehicle.LicensePlate)
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error {
	existing, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return domain.ErrAccessDenied
	}
	return s.vehicleRepo.Update(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, actor domain.Actor, id int64) error {
	existing, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return domain.ErrAccessDenied
	}
	if existing.Status == domain.VehicleStatusRented {
		return domain.ErrVehicleUnavailable
	}
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, page, pageSize)
}

// ListMyVehicles returns the fleet entries owned by the caller.
func (s *vehicleService) ListMyVehicles(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	return s.vehicleRepo.ListByOwner(ctx, actor.UserID, page, pageSize)
}

func (s *vehicleService) SearchVehicles(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int64, error) {
	return s.vehicleRepo.Search(ctx, filter, page, pageSize)
}
