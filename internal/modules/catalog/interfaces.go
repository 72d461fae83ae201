package catalog

import (
	"context"
	"time"

	"rentwheels/internal/domain"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Vehicle, error)
	GetByLocation(ctx context.Context, location string) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
}

// AvailabilityChecker is the booking engine's conflict predicate. Search
// filters candidates through it instead of trusting the cached is_available
// flag.
type AvailabilityChecker interface {
	IsFree(ctx context.Context, vehicleID int64, pickup, ret time.Time) (bool, error)
}
