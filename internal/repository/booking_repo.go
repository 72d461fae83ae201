package repository

import (
	"context"
	"errors"
	"time"

	"rentwheels/internal/domain"

	"gorm.io/gorm"
)

// ErrStaleStatus is returned when a guarded status update matched no row,
// meaning the booking's status changed under a concurrent transition.
var ErrStaleStatus = errors.New("booking status changed concurrently")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	VehicleID    int64      `gorm:"column:vehicle_id;index:idx_bookings_vehicle_status,priority:1"`
	OwnerID      int64      `gorm:"column:owner_id"`
	UserID       int64      `gorm:"column:user_id"`
	PickupDate   time.Time  `gorm:"column:pickup_date"`
	ReturnDate   time.Time  `gorm:"column:return_date"`
	NumberOfDays int        `gorm:"column:number_of_days"`
	Price        float64    `gorm:"column:price"`
	Status       string     `gorm:"column:status;index:idx_bookings_vehicle_status,priority:2"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		VehicleID:    m.VehicleID,
		OwnerID:      m.OwnerID,
		UserID:       m.UserID,
		PickupDate:   m.PickupDate,
		ReturnDate:   m.ReturnDate,
		NumberOfDays: m.NumberOfDays,
		Price:        m.Price,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		CancelledAt:  m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		VehicleID:    b.VehicleID,
		OwnerID:      b.OwnerID,
		UserID:       b.UserID,
		PickupDate:   b.PickupDate,
		ReturnDate:   b.ReturnDate,
		NumberOfDays: b.NumberOfDays,
		Price:        b.Price,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		CancelledAt:  b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ActiveByVehicle returns the vehicle's pending and confirmed bookings,
// earliest pickup first. The (vehicle_id, status) index keeps this cheap;
// overlap evaluation happens in the domain layer against these rows, never
// against the cached availability flag.
func (r *BookingRepository) ActiveByVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status IN ?", vehicleID, activeStatusStrings()).
		Order("pickup_date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "user_id = ?", userID, limit, offset)
}

func (r *BookingRepository) ListByOwnerID(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error) {
	return r.list(ctx, "owner_id = ?", ownerID, limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, cond string, id int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where(cond, id).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatusWithAvailability applies a status transition guarded by the
// expected current status, and flips the vehicle's availability flag in the
// same transaction when setAvailable is non-nil. Zero rows updated means a
// concurrent transition won the race; the caller gets ErrStaleStatus and the
// vehicle flag is left untouched.
func (r *BookingRepository) UpdateStatusWithAvailability(ctx context.Context, bookingID int64, from, to domain.BookingStatus, setAvailable *bool) (*domain.Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]any{
			"status":     string(to),
			"updated_at": now,
		}
		if to == domain.BookingCancelled {
			updates["cancelled_at"] = now
		}

		res := tx.Model(&bookingModel{}).
			Where("id = ? AND status = ?", bookingID, string(from)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleStatus
		}

		if err := tx.First(&m, bookingID).Error; err != nil {
			return err
		}

		if setAvailable != nil {
			res = tx.Model(&vehicleModel{}).
				Where("id = ?", m.VehicleID).
				Update("is_available", *setAvailable)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// ExpirePending cancels pending bookings created before cutoff. Used by the
// scheduled expiry job, not by the request path.
func (r *BookingRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ? AND created_at < ?", string(domain.BookingPending), cutoff).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}

func activeStatusStrings() []string {
	active := domain.ActiveStatuses()
	out := make([]string, 0, len(active))
	for _, s := range active {
		out = append(out, string(s))
	}
	return out
}
