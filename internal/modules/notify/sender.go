package notify

import (
	"context"
	"time"
)

// Event is the payload pushed to connected clients.
type Event struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	VehicleID int64     `json:"vehicle_id"`
	Pickup    time.Time `json:"pickup,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Sender delivers booking events over the hub. Offline recipients simply
// miss the push; their booking lists stay authoritative.
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) NotifyBookingCreated(ctx context.Context, ownerUserID, bookingID, vehicleID int64, pickup time.Time) error {
	s.hub.SendToUser(ownerUserID, Event{
		Type:      "booking_created",
		BookingID: bookingID,
		VehicleID: vehicleID,
		Pickup:    pickup,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *Sender) NotifyBookingConfirmed(ctx context.Context, renterUserID, bookingID, vehicleID int64) error {
	s.hub.SendToUser(renterUserID, Event{
		Type:      "booking_confirmed",
		BookingID: bookingID,
		VehicleID: vehicleID,
		Status:    "confirmed",
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *Sender) NotifyBookingCancelled(ctx context.Context, renterUserID, bookingID, vehicleID int64) error {
	s.hub.SendToUser(renterUserID, Event{
		Type:      "booking_cancelled",
		BookingID: bookingID,
		VehicleID: vehicleID,
		Status:    "cancelled",
		CreatedAt: time.Now(),
	})
	return nil
}
