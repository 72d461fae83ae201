package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a range does not satisfy pickup < return.
var ErrInvalidRange = errors.New("pickup date must be before return date")

// DateRange is a half-open interval [Pickup, Return): the pickup day is
// included, the return day is excluded. A rental returning on day N and
// another picking up on day N do not overlap.
type DateRange struct {
	Pickup time.Time
	Return time.Time
}

func NewDateRange(pickup, ret time.Time) (DateRange, error) {
	if !pickup.Before(ret) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Pickup: pickup, Return: ret}, nil
}

// Overlaps reports whether two half-open ranges share at least one instant.
// Boundary equality is not overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Pickup.Before(o.Return) && o.Pickup.Before(r.Return)
}

// Days is the billable day count, rounded up to a whole day. Always >= 1 for
// a valid range.
func (r DateRange) Days() int {
	d := r.Return.Sub(r.Pickup)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
