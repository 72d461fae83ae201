package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_OfflineUser(t *testing.T) {
	hub := NewHub()

	assert.False(t, hub.IsOnline(42))
	assert.False(t, hub.SendToUser(42, Event{Type: "booking_created"}))
}

func TestSender_OfflineRecipientIsNotAnError(t *testing.T) {
	sender := NewSender(NewHub())

	err := sender.NotifyBookingCreated(context.Background(), 21, 1, 7, time.Now())
	assert.NoError(t, err)

	err = sender.NotifyBookingConfirmed(context.Background(), 42, 1, 7)
	assert.NoError(t, err)

	err = sender.NotifyBookingCancelled(context.Background(), 42, 1, 7)
	assert.NoError(t, err)
}
