package main

import (
	"context"
	"log"
	"os"
	"time"

	"rentwheels/internal/database"
	"rentwheels/internal/domain"
	"rentwheels/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rentwheels.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatal("constraint setup failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	owner := seedUser(db, "owner@rentwheels.kz", "owner123", "Arman", domain.RoleOwner)
	renter := seedUser(db, "renter@rentwheels.kz", "renter123", "Dana", domain.RoleRenter)
	seedUser(db, "admin@rentwheels.kz", "admin123", "Admin", domain.RoleAdmin)

	log.Println("Creating vehicles...")
	vehicles := []domain.Vehicle{
		{OwnerID: owner.ID, Title: "Honda CB500F", Type: domain.VehicleMotorcycle, Location: "Almaty", PricePerDay: 500, IsAvailable: true},
		{OwnerID: owner.ID, Title: "Toyota Camry 70", Type: domain.VehicleCar, Location: "Almaty", PricePerDay: 1200, IsAvailable: true},
		{OwnerID: owner.ID, Title: "Yadea G5 scooter", Type: domain.VehicleScooter, Location: "Astana", PricePerDay: 150, IsAvailable: true},
	}
	vehicleRepo := repository.NewVehicleRepository(db)
	for i := range vehicles {
		if err := vehicleRepo.Create(context.Background(), &vehicles[i]); err != nil {
			log.Fatal("vehicle seed failed:", err)
		}
	}

	log.Println("Creating a confirmed booking...")
	pickup := startOfDay(time.Now()).AddDate(0, 0, 7)
	b := domain.Booking{
		VehicleID:    vehicles[0].ID,
		OwnerID:      owner.ID,
		UserID:       renter.ID,
		PickupDate:   pickup,
		ReturnDate:   pickup.AddDate(0, 0, 4),
		NumberOfDays: 4,
		Price:        2000,
		Status:       domain.BookingConfirmed,
	}
	bookingRepo := repository.NewBookingRepository(db)
	if err := bookingRepo.Create(context.Background(), &b); err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Println("Seed complete.")
}

func seedUser(db *gorm.DB, email, password, name string, role domain.Role) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := repository.NewUserRepository(db).Create(context.Background(), u); err != nil {
		log.Fatal("user seed failed:", err)
	}
	return u
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
