package utils

import (
	"regexp"
	"time"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	timeSlotRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidTimeSlot accepts 24h "HH:MM" labels, e.g. "14:00".
func IsValidTimeSlot(slot string) bool {
	return timeSlotRegex.MatchString(slot)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// FormatDate renders a date the way ParseDate reads it.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
