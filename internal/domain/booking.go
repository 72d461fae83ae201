package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// statusSuccessors is the full transition graph. Cancelled and completed are
// terminal: they have no successors.
var statusSuccessors = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCancelled: {},
	BookingCompleted: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := statusSuccessors[s]
	return ok
}

func (s BookingStatus) IsTerminal() bool {
	succ, ok := statusSuccessors[s]
	return ok && len(succ) == 0
}

// IsActive reports whether the booking holds its calendar slot. Pending
// bookings block the slot too: a provisional hold must not be double-sold
// while the owner decides.
func (s BookingStatus) IsActive() bool {
	return s == BookingPending || s == BookingConfirmed
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, v := range statusSuccessors[s] {
		if v == next {
			return true
		}
	}
	return false
}

// ActiveStatuses lists the statuses that participate in conflict checks.
func ActiveStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed}
}

type Booking struct {
	ID           int64         `json:"id"`
	VehicleID    int64         `json:"vehicle_id" validate:"required"`
	OwnerID      int64         `json:"owner_id"`
	UserID       int64         `json:"user_id" validate:"required"`
	PickupDate   time.Time     `json:"pickup_date" validate:"required"`
	ReturnDate   time.Time     `json:"return_date" validate:"required"`
	NumberOfDays int           `json:"number_of_days"`
	Price        float64       `json:"price" validate:"gte=0"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

// Range is the booking's calendar slot as a half-open interval.
func (b *Booking) Range() DateRange {
	return DateRange{Pickup: b.PickupDate, Return: b.ReturnDate}
}
