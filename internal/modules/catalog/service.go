package catalog

import (
	"context"
	"errors"
	"time"

	"rentwheels/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	vehicles VehicleRepository
	checker  AvailabilityChecker
}

func NewService(vehicles VehicleRepository, checker AvailabilityChecker) *Service {
	return &Service{vehicles: vehicles, checker: checker}
}

func (s *Service) CreateVehicle(ctx context.Context, ownerID int64, req CreateVehicleRequest) (*domain.Vehicle, error) {
	vt := domain.VehicleType(req.Type)
	switch vt {
	case domain.VehicleCar, domain.VehicleMotorcycle, domain.VehicleScooter:
	default:
		return nil, ErrValidation
	}

	v := &domain.Vehicle{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        vt,
		Location:    req.Location,
		PricePerDay: req.PricePerDay,
		IsAvailable: true, // new listings start available
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) MyVehicles(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	return s.vehicles.GetByOwnerID(ctx, ownerID)
}

func (s *Service) UpdateVehicle(ctx context.Context, ownerID, vehicleID int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		v.Title = *req.Title
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay <= 0 {
			return nil, ErrValidation
		}
		v.PricePerDay = *req.PricePerDay
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// SearchAvailable returns the vehicles at location that are free for the
// whole [pickup, ret) range. Each candidate goes through the booking
// engine's conflict check, so results are correct even when a vehicle's
// cached flag is stale.
func (s *Service) SearchAvailable(ctx context.Context, location string, pickup, ret time.Time) ([]domain.Vehicle, error) {
	if location == "" {
		return nil, ErrValidation
	}
	if _, err := domain.NewDateRange(pickup, ret); err != nil {
		return nil, ErrValidation
	}

	candidates, err := s.vehicles.GetByLocation(ctx, location)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Vehicle, 0, len(candidates))
	for i := range candidates {
		free, err := s.checker.IsFree(ctx, candidates[i].ID, pickup, ret)
		if err != nil {
			return nil, err
		}
		if free {
			out = append(out, candidates[i])
		}
	}
	return out, nil
}
