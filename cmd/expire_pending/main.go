package main

import (
	"context"
	"log"
	"os"
	"time"

	"rentwheels/internal/database"
	"rentwheels/internal/repository"
)

// Cancels pending bookings whose owner never acted, releasing their hold on
// the vehicle calendar. Meant to run from cron; the request path itself
// never expires anything.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ttl := 48 * time.Hour
	if raw := os.Getenv("PENDING_BOOKING_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid PENDING_BOOKING_TTL: %v", err)
		}
		ttl = parsed
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := repository.NewBookingRepository(db)
	n, err := repo.ExpirePending(context.Background(), time.Now().Add(-ttl))
	if err != nil {
		log.Fatalf("expire pending failed: %v", err)
	}

	log.Printf("pending booking expiry completed: cancelled=%d ttl=%s", n, ttl)
}
