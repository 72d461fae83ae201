package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// EnsureBookingConstraints installs the storage-level guard against double
// booking. On PostgreSQL this is an exclusion constraint over the half-open
// rental interval: no two pending/confirmed bookings on one vehicle may hold
// overlapping [pickup_date, return_date) ranges, enforced by the database
// itself regardless of application-level checks. SQLite has no exclusion
// constraints; there the per-vehicle lock in the reservation service is the
// only guard, which is acceptable for single-process development setups.
func EnsureBookingConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_double_booking'
  ) THEN
    ALTER TABLE bookings
      ADD CONSTRAINT idx_no_double_booking
      EXCLUDE USING gist (
        vehicle_id WITH =,
        tstzrange(pickup_date, return_date, '[)') WITH &&
      )
      WHERE (status IN ('pending', 'confirmed'));
  END IF;
END
$$;
`).Error
}
