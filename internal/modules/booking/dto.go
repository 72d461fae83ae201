package booking

import (
	"time"

	"rentwheels/internal/domain"
)

type CreateBookingRequest struct {
	VehicleID  int64     `json:"vehicle_id" binding:"required"`
	PickupDate time.Time `json:"pickup_date" binding:"required"`
	ReturnDate time.Time `json:"return_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID           int64     `json:"id"`
	VehicleID    int64     `json:"vehicle_id"`
	PickupDate   time.Time `json:"pickup_date"`
	ReturnDate   time.Time `json:"return_date"`
	NumberOfDays int       `json:"number_of_days"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		VehicleID:    b.VehicleID,
		PickupDate:   b.PickupDate,
		ReturnDate:   b.ReturnDate,
		NumberOfDays: b.NumberOfDays,
		Price:        b.Price,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

type VehicleState struct {
	ID          int64 `json:"id"`
	IsAvailable bool  `json:"is_available"`
}

type StatusChangeResponse struct {
	BookingID int64        `json:"booking_id"`
	Status    string       `json:"status"`
	Vehicle   VehicleState `json:"vehicle"`
}

// BusyRange is one occupied slot on a vehicle's calendar.
type BusyRange struct {
	PickupDate time.Time `json:"pickup_date"`
	ReturnDate time.Time `json:"return_date"`
	Status     string    `json:"status"`
}
