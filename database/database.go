package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motovasiya-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key violations must surface as gorm.ErrDuplicatedKey so the
		// booking repository can report slot conflicts.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Instructor{},
		&models.Motorcycle{},
		&models.Booking{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// AutoMigrate creates uk_bookings_instructor_slot from the model tags; this
	// covers databases migrated by older builds that predate the tag.
	if err := db.Exec("ALTER TABLE bookings ADD CONSTRAINT uk_bookings_instructor_slot UNIQUE (instructor_id, date, time_slot)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for bookings: %v\n", err)
	}

	return nil
}

// SeedData populates the database with the initial demo data: one admin
// instructor, one motorcycle and a confirmed booking for today at 10:00.
// Safe to run repeatedly.
func SeedData(db *gorm.DB) error {
	instructor := models.Instructor{
		Name:    "Narmin",
		Surname: "Mammadova",
		Email:   "narmin@motovasiya.az",
		Bio:     "Professional certified instructor. Passionate about teaching safe riding techniques to new riders.",
		Photo:   "https://images.unsplash.com/photo-1622151834625-1e43d1a88b8f?auto=format&fit=crop&q=80&w=400",
		Active:  true,
		IsAdmin: true,
	}
	if err := db.Where(models.Instructor{Email: instructor.Email}).FirstOrCreate(&instructor).Error; err != nil {
		return fmt.Errorf("failed to seed instructor: %w", err)
	}

	motorcycle := models.Motorcycle{
		Name:        "Bajaj Pulsar NS160",
		Image:       "https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?auto=format&fit=crop&q=80&w=800",
		Description: "160cc Street Fighter. Agile, powerful, and perfect for training.",
		Active:      true,
	}
	if err := db.Where(models.Motorcycle{Name: motorcycle.Name}).FirstOrCreate(&motorcycle).Error; err != nil {
		return fmt.Errorf("failed to seed motorcycle: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	booking := models.Booking{
		InstructorID:     instructor.ID,
		MotorcycleID:     motorcycle.ID,
		Date:             today,
		TimeSlot:         "10:00",
		Status:           models.BookingStatusConfirmed,
		CustomerName:     "Demo",
		CustomerSurname:  "User",
		CustomerGender:   "Male",
		CustomerAge:      25,
		CustomerHeightCm: 175,
		CustomerPhone:    "+994 50 000 00 00",
	}
	err := db.Where(models.Booking{
		InstructorID: instructor.ID,
		Date:         today,
		TimeSlot:     booking.TimeSlot,
	}).FirstOrCreate(&booking).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to seed booking: %w", err)
	}

	fmt.Println("Database seeded with demo data")
	return nil
}
