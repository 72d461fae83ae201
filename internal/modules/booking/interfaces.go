package booking

import (
	"context"
	"time"

	"rentwheels/internal/domain"
)

// BookingRepository is the persistence boundary for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ActiveByVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	ListByOwnerID(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatusWithAvailability(ctx context.Context, bookingID int64, from, to domain.BookingStatus, setAvailable *bool) (*domain.Booking, error)
}

// VehicleRepository exposes the vehicle lookups the booking flow needs.
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// NotificationSender delivers booking events to users. Delivery is best
// effort; failures never fail the booking operation.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, ownerUserID, bookingID, vehicleID int64, pickup time.Time) error
	NotifyBookingConfirmed(ctx context.Context, renterUserID, bookingID, vehicleID int64) error
	NotifyBookingCancelled(ctx context.Context, renterUserID, bookingID, vehicleID int64) error
}
