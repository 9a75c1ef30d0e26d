package models

import (
	"time"
)

// Booking statuses. Transitions are caller-driven, there is no state machine.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three lifecycle states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a training session reservation. An instructor can hold at most
// one booking per (date, time_slot) pair, enforced by a composite unique
// index at the database level so concurrent creates cannot both succeed.
type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	InstructorID uint      `json:"instructor_id" gorm:"not null;uniqueIndex:uk_bookings_instructor_slot"`
	MotorcycleID uint      `json:"motorcycle_id" gorm:"not null;index"`
	Date         time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uk_bookings_instructor_slot"`
	TimeSlot     string    `json:"time_slot" gorm:"not null;size:10;uniqueIndex:uk_bookings_instructor_slot"`
	Status       string    `json:"status" gorm:"not null;size:20;default:'pending'"`

	// Customer details are flattened into booking columns; the wire format
	// nests them under a single "customer" object (see CustomerInfo).
	CustomerName     string `json:"-" gorm:"not null;size:100"`
	CustomerSurname  string `json:"-" gorm:"not null;size:100"`
	CustomerGender   string `json:"-" gorm:"not null;size:10"`
	CustomerAge      int    `json:"-" gorm:"not null"`
	CustomerHeightCm int    `json:"-" gorm:"not null"`
	CustomerPhone    string `json:"-" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Instructor Instructor `json:"-" gorm:"foreignKey:InstructorID"`
	Motorcycle Motorcycle `json:"-" gorm:"foreignKey:MotorcycleID"`
}

// CustomerInfo is the nested customer object used on the wire. Keys are
// camelCase to match the frontend contract (heightCm, not height_cm).
type CustomerInfo struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Age      int    `json:"age" binding:"required,gt=0"`
	HeightCm int    `json:"heightCm" binding:"required,gt=0"`
	Phone    string `json:"phone" binding:"required"`
}

// Customer returns the embedded customer columns as a wire-format object.
func (b *Booking) Customer() CustomerInfo {
	return CustomerInfo{
		Name:     b.CustomerName,
		Surname:  b.CustomerSurname,
		Gender:   b.CustomerGender,
		Age:      b.CustomerAge,
		HeightCm: b.CustomerHeightCm,
		Phone:    b.CustomerPhone,
	}
}
