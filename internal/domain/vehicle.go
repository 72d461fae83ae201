package domain

import "time"

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleScooter    VehicleType = "scooter"
)

type Vehicle struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	Type        VehicleType `json:"type" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	PricePerDay float64     `json:"price_per_day" validate:"required,gte=0"`

	// IsAvailable is an advisory cache for listing pages: "no confirmed
	// booking currently claims this vehicle". It is written only by the
	// booking status engine and is never consulted for conflict decisions.
	IsAvailable bool `json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
