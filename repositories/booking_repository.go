package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"motovasiya-api/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) List() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Create inserts the booking. Slot conflicts are detected through the unique
// index on (instructor_id, date, time_slot), so two concurrent creates for
// the same slot cannot both succeed.
func (r *BookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlot
		}
		return err
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(booking *models.Booking, status string) error {
	booking.Status = status
	return r.db.Model(booking).Update("status", status).Error
}

func (r *BookingRepository) Delete(booking *models.Booking) error {
	return r.db.Delete(booking).Error
}

// CancelStalePending marks pending bookings dated before the cutoff as
// cancelled. Used by the cleanup job.
func (r *BookingRepository) CancelStalePending(before time.Time) (int64, error) {
	result := r.db.Model(&models.Booking{}).
		Where("status = ? AND date < ?", models.BookingStatusPending, before).
		Update("status", models.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}
