package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sellbarbers/booking-api/internal/config"
	"github.com/sellbarbers/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.GeneralInfo{},
		&models.User{},
		&models.Barber{},
		&models.WorkingHours{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// A slot may hold at most one active booking. Cancelled rows drop
	// out of the index so the slot can be re-booked.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
        ON bookings (barber_id, date, time)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatalf("failed to create booking slot index: %v", err)
	}

	if err := Seed(db, cfg); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	return db
}
