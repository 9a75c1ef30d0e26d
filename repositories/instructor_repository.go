package repositories

import (
	"errors"

	"gorm.io/gorm"
	"motovasiya-api/models"
)

type InstructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns instructors ordered newest first. With onlyActive set, rows
// with active = false are excluded (the public listing).
func (r *InstructorRepository) List(onlyActive bool) ([]models.Instructor, error) {
	query := r.db.Order("created_at DESC")
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	var instructors []models.Instructor
	if err := query.Find(&instructors).Error; err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *InstructorRepository) GetByID(id uint) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := r.db.First(&instructor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) GetByEmail(email string) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := r.db.Where("email = ?", email).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) Create(instructor *models.Instructor) error {
	if err := r.db.Create(instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update applies a partial column update. A map is used so false/empty values
// are written as well.
func (r *InstructorRepository) Update(instructor *models.Instructor, updates map[string]interface{}) error {
	if err := r.db.Model(instructor).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// ToggleActive flips the active flag and persists it. Last write wins under
// concurrent toggles.
func (r *InstructorRepository) ToggleActive(instructor *models.Instructor) error {
	instructor.Active = !instructor.Active
	return r.db.Model(instructor).Update("active", instructor.Active).Error
}

// Delete removes the instructor together with its bookings. The cascade is
// explicit rather than delegated to foreign key actions.
func (r *InstructorRepository) Delete(instructor *models.Instructor) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("instructor_id = ?", instructor.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(instructor).Error
	})
}
