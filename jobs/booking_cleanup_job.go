package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"motovasiya-api/repositories"
)

// BookingCleanupJob periodically cancels pending bookings whose date has
// passed. A pending row for a past date can never be confirmed, it only
// blocks the slot from showing as free.
type BookingCleanupJob struct {
	bookings *repositories.BookingRepository
	ticker   *time.Ticker
	done     chan bool
}

// NewBookingCleanupJob creates a new cleanup job
func NewBookingCleanupJob(db *gorm.DB, interval time.Duration) *BookingCleanupJob {
	return &BookingCleanupJob{
		bookings: repositories.NewBookingRepository(db),
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
	}
}

// Start begins the cleanup job
func (j *BookingCleanupJob) Start() {
	fmt.Println("Booking cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Booking cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *BookingCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *BookingCleanupJob) cleanup() {
	today := time.Now().Truncate(24 * time.Hour)

	cancelled, err := j.bookings.CancelStalePending(today)
	if err != nil {
		fmt.Printf("Error during booking cleanup: %v\n", err)
		return
	}

	if cancelled > 0 {
		fmt.Printf("Booking cleanup cancelled %d stale pending bookings\n", cancelled)
	}
}
