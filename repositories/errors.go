package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlot is returned when a booking collides with an existing
	// (instructor, date, time_slot) row.
	ErrDuplicateSlot = errors.New("instructor already booked for this date and time slot")

	// ErrDuplicateEmail is returned when an instructor email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
