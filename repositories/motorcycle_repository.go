package repositories

import (
	"errors"

	"gorm.io/gorm"
	"motovasiya-api/models"
)

type MotorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

func (r *MotorcycleRepository) List(onlyActive bool) ([]models.Motorcycle, error) {
	query := r.db.Order("created_at DESC")
	if onlyActive {
		query = query.Where("active = ?", true)
	}

	var motorcycles []models.Motorcycle
	if err := query.Find(&motorcycles).Error; err != nil {
		return nil, err
	}
	return motorcycles, nil
}

func (r *MotorcycleRepository) GetByID(id uint) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	if err := r.db.First(&motorcycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &motorcycle, nil
}

func (r *MotorcycleRepository) Create(motorcycle *models.Motorcycle) error {
	return r.db.Create(motorcycle).Error
}

func (r *MotorcycleRepository) Update(motorcycle *models.Motorcycle, updates map[string]interface{}) error {
	return r.db.Model(motorcycle).Updates(updates).Error
}

// Delete removes the motorcycle together with its bookings.
func (r *MotorcycleRepository) Delete(motorcycle *models.Motorcycle) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("motorcycle_id = ?", motorcycle.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(motorcycle).Error
	})
}
