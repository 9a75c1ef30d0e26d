package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"motovasiya-api/models"
	"motovasiya-api/repositories"
	"motovasiya-api/utils"
)

// InstructorFinder is the slice of the instructor store the login flow needs.
type InstructorFinder interface {
	GetByEmail(email string) (*models.Instructor, error)
}

// AuthController exchanges an instructor email for a signed token.
//
// This is identification, not authentication: no password or other credential
// is checked, matching the behavior of the admin frontend this API serves.
type AuthController struct {
	instructors InstructorFinder
	jwtSecret   string
}

func NewAuthController(instructors InstructorFinder, jwtSecret string) *AuthController {
	return &AuthController{
		instructors: instructors,
		jwtSecret:   jwtSecret,
	}
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	Token      string            `json:"token"`
	Instructor models.Instructor `json:"instructor"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Email is required")
		return
	}

	instructor, err := ac.instructors.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Instructor not found. Try narmin@motovasiya.az")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to look up instructor")
		return
	}

	token, err := ac.generateJWT(instructor.ID, instructor.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:      token,
		Instructor: *instructor,
	})
}

func (ac *AuthController) generateJWT(instructorID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"instructor_id": instructorID,
		"email":         email,
		"exp":           time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
