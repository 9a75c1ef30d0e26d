package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"motovasiya-api/middleware"
	"motovasiya-api/models"
	"motovasiya-api/repositories"
	"motovasiya-api/utils"
)

// MotorcycleStore is implemented by repositories.MotorcycleRepository.
type MotorcycleStore interface {
	List(onlyActive bool) ([]models.Motorcycle, error)
	GetByID(id uint) (*models.Motorcycle, error)
	Create(motorcycle *models.Motorcycle) error
	Update(motorcycle *models.Motorcycle, updates map[string]interface{}) error
	Delete(motorcycle *models.Motorcycle) error
}

type MotorcycleController struct {
	motorcycles MotorcycleStore
}

func NewMotorcycleController(motorcycles MotorcycleStore) *MotorcycleController {
	return &MotorcycleController{motorcycles: motorcycles}
}

type CreateMotorcycleRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type UpdateMotorcycleRequest struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// GetMotorcycles lists motorcycles. Unauthenticated callers see only active
// rows; authenticated callers see everything.
func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	onlyActive := !c.GetBool(middleware.ContextAuthed)

	motorcycles, err := mc.motorcycles.List(onlyActive)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch motorcycles")
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	motorcycle, ok := mc.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	motorcycle := models.Motorcycle{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Active:      true,
	}

	if err := mc.motorcycles.Create(&motorcycle); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create motorcycle")
		return
	}

	c.JSON(http.StatusCreated, motorcycle)
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	motorcycle, ok := mc.lookup(c)
	if !ok {
		return
	}

	var req UpdateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := mc.motorcycles.Update(motorcycle, updates); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update motorcycle")
			return
		}
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	motorcycle, ok := mc.lookup(c)
	if !ok {
		return
	}

	// Deletes the motorcycle's bookings as well.
	if err := mc.motorcycles.Delete(motorcycle); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete motorcycle")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Motorcycle deleted successfully"})
}

func (mc *MotorcycleController) lookup(c *gin.Context) (*models.Motorcycle, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "id must be an integer")
		return nil, false
	}

	motorcycle, err := mc.motorcycles.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendNotFound(c, "Motorcycle")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch motorcycle")
		}
		return nil, false
	}

	return motorcycle, true
}
