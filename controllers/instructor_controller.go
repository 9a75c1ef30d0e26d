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

// InstructorStore is implemented by repositories.InstructorRepository.
type InstructorStore interface {
	List(onlyActive bool) ([]models.Instructor, error)
	GetByID(id uint) (*models.Instructor, error)
	GetByEmail(email string) (*models.Instructor, error)
	Create(instructor *models.Instructor) error
	Update(instructor *models.Instructor, updates map[string]interface{}) error
	ToggleActive(instructor *models.Instructor) error
	Delete(instructor *models.Instructor) error
}

type InstructorController struct {
	instructors InstructorStore
}

func NewInstructorController(instructors InstructorStore) *InstructorController {
	return &InstructorController{instructors: instructors}
}

type CreateInstructorRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Bio     string `json:"bio"`
	Photo   string `json:"photo"`
	IsAdmin bool   `json:"is_admin"`
}

type UpdateInstructorRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Bio     *string `json:"bio"`
	Photo   *string `json:"photo"`
	Active  *bool   `json:"active"`
	IsAdmin *bool   `json:"is_admin"`
}

// GetInstructors lists instructors. Unauthenticated callers see only active
// rows; authenticated callers see everything.
func (ic *InstructorController) GetInstructors(c *gin.Context) {
	onlyActive := !c.GetBool(middleware.ContextAuthed)

	instructors, err := ic.instructors.List(onlyActive)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch instructors")
		return
	}

	c.JSON(http.StatusOK, instructors)
}

func (ic *InstructorController) GetInstructor(c *gin.Context) {
	instructor, ok := ic.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, instructor)
}

func (ic *InstructorController) CreateInstructor(c *gin.Context) {
	var req CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	instructor := models.Instructor{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Bio:     req.Bio,
		Photo:   req.Photo,
		Active:  true,
		IsAdmin: req.IsAdmin,
	}

	if err := ic.instructors.Create(&instructor); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			utils.SendConflict(c, "Email already registered")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create instructor")
		return
	}

	c.JSON(http.StatusCreated, instructor)
}

func (ic *InstructorController) UpdateInstructor(c *gin.Context) {
	instructor, ok := ic.lookup(c)
	if !ok {
		return
	}

	var req UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}

	if len(updates) > 0 {
		if err := ic.instructors.Update(instructor, updates); err != nil {
			if errors.Is(err, repositories.ErrDuplicateEmail) {
				utils.SendConflict(c, "Email already registered")
				return
			}
			utils.SendError(c, http.StatusInternalServerError, "Failed to update instructor")
			return
		}
	}

	c.JSON(http.StatusOK, instructor)
}

func (ic *InstructorController) DeleteInstructor(c *gin.Context) {
	instructor, ok := ic.lookup(c)
	if !ok {
		return
	}

	// Deletes the instructor's bookings as well.
	if err := ic.instructors.Delete(instructor); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete instructor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Instructor deleted successfully"})
}

// ToggleStatus flips the active flag and returns the updated record. Two
// toggles return the instructor to its original state.
func (ic *InstructorController) ToggleStatus(c *gin.Context) {
	instructor, ok := ic.lookup(c)
	if !ok {
		return
	}

	if err := ic.instructors.ToggleActive(instructor); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to toggle instructor status")
		return
	}

	c.JSON(http.StatusOK, instructor)
}

func (ic *InstructorController) lookup(c *gin.Context) (*models.Instructor, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "id must be an integer")
		return nil, false
	}

	instructor, err := ic.instructors.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendNotFound(c, "Instructor")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch instructor")
		}
		return nil, false
	}

	return instructor, true
}
