package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"rentwheels/internal/domain"
	"rentwheels/internal/pkg/vlock"
	"rentwheels/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// noDoubleBookingConstraint is the exclusion constraint installed by
// database.EnsureBookingConstraints. A violation means a concurrent request
// inserted an overlapping booking between our availability check and our
// insert.
const noDoubleBookingConstraint = "idx_no_double_booking"

type Service struct {
	bookings BookingRepository
	vehicles VehicleRepository
	notifs   NotificationSender
	locks    *vlock.Keyed
}

func NewService(bookings BookingRepository, vehicles VehicleRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
		notifs:   notifs,
		locks:    vlock.New(),
	}
}

// IsFree reports whether no pending or confirmed booking on the vehicle
// overlaps [pickup, ret). It always recomputes from the active booking set;
// the vehicle's is_available flag is a listing hint and plays no part here.
func (s *Service) IsFree(ctx context.Context, vehicleID int64, pickup, ret time.Time) (bool, error) {
	rng, err := domain.NewDateRange(pickup, ret)
	if err != nil {
		return false, ErrValidation
	}

	active, err := s.bookings.ActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	for i := range active {
		if rng.Overlaps(active[i].Range()) {
			return false, nil
		}
	}
	return true, nil
}

// Reserve creates a pending booking for the requested dates.
//
// The check-then-insert race is closed twice over: a per-vehicle lock
// serializes reservation attempts on the same vehicle within this process,
// and on PostgreSQL the idx_no_double_booking exclusion constraint rejects
// any overlapping insert that slips past the check (for example from another
// process). A constraint violation surfaces as ErrOverbooking, which callers
// present exactly like ErrNotAvailable.
func (s *Service) Reserve(ctx context.Context, req CreateBookingRequest, userID int64) (*domain.Booking, error) {
	rng, err := domain.NewDateRange(req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, ErrValidation
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, rng.Pickup.Location())
	if rng.Pickup.Before(startOfToday) {
		return nil, ErrValidation
	}

	unlock := s.locks.Lock(req.VehicleID)
	defer unlock()

	free, err := s.IsFree(ctx, req.VehicleID, rng.Pickup, rng.Return)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrNotAvailable
	}

	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	days := rng.Days()
	price := math.Round(vehicle.PricePerDay*float64(days)*100) / 100

	b := &domain.Booking{
		VehicleID:    vehicle.ID,
		OwnerID:      vehicle.OwnerID,
		UserID:       userID,
		PickupDate:   rng.Pickup,
		ReturnDate:   rng.Return,
		NumberOfDays: days,
		Price:        price,
		Status:       domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == noDoubleBookingConstraint {
			return nil, ErrOverbooking
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, vehicle.OwnerID, b.ID, vehicle.ID, b.PickupDate)
	}

	return b, nil
}

// UpdateStatus applies one edge of the booking state machine and flips the
// vehicle's availability flag in the same transaction.
//
// The flag write is deliberately naive: it follows the target status alone
// (confirmed -> unavailable, cancelled/completed -> available) and does not
// recompute whether some other confirmed booking still covers today. The flag
// is a best-effort listing hint; every conflict decision recomputes from the
// active booking set, so a stale flag can never cause a double booking.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorUserID int64, actorRole string, newStatus domain.BookingStatus) (*domain.Booking, *domain.Vehicle, error) {
	if !newStatus.Valid() {
		return nil, nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if b.OwnerID != actorUserID && actorRole != string(domain.RoleAdmin) {
		return nil, nil, ErrForbidden
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, nil, ErrInvalidStatusTransition
	}

	updated, err := s.bookings.UpdateStatusWithAvailability(ctx, bookingID, b.Status, newStatus, availabilityFor(newStatus))
	if err != nil {
		// A concurrent transition moved the booking first; from the caller's
		// point of view the requested edge no longer exists.
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, nil, ErrInvalidStatusTransition
		}
		return nil, nil, err
	}

	vehicle, err := s.vehicles.GetByID(ctx, updated.VehicleID)
	if err != nil {
		return nil, nil, err
	}

	if s.notifs != nil {
		switch newStatus {
		case domain.BookingConfirmed:
			_ = s.notifs.NotifyBookingConfirmed(ctx, updated.UserID, updated.ID, updated.VehicleID)
		case domain.BookingCancelled:
			_ = s.notifs.NotifyBookingCancelled(ctx, updated.UserID, updated.ID, updated.VehicleID)
		}
	}

	return updated, vehicle, nil
}

// availabilityFor maps a transition target to its flag side effect. Nil
// means the flag is untouched; a pending booking does not yet claim
// exclusive use.
func availabilityFor(status domain.BookingStatus) *bool {
	var v bool
	switch status {
	case domain.BookingConfirmed:
		v = false
	case domain.BookingCancelled, domain.BookingCompleted:
		v = true
	default:
		return nil
	}
	return &v
}

func (s *Service) MyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUserID(ctx, userID, limit, offset)
}

func (s *Service) OwnerBookings(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByOwnerID(ctx, ownerID, limit, offset)
}

// BusyRanges returns the occupied slots on the vehicle's calendar so clients
// can grey out taken dates before attempting a reservation.
func (s *Service) BusyRanges(ctx context.Context, vehicleID int64) ([]BusyRange, error) {
	active, err := s.bookings.ActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	out := make([]BusyRange, 0, len(active))
	for _, b := range active {
		out = append(out, BusyRange{
			PickupDate: b.PickupDate,
			ReturnDate: b.ReturnDate,
			Status:     string(b.Status),
		})
	}
	return out, nil
}
