package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"motovasiya-api/models"
	"motovasiya-api/repositories"
	"motovasiya-api/utils"
)

// BookingStore is implemented by repositories.BookingRepository.
type BookingStore interface {
	List() ([]models.Booking, error)
	GetByID(id uint) (*models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(booking *models.Booking, status string) error
	Delete(booking *models.Booking) error
}

// BookingNotifier sends out-of-band notifications about bookings. May be nil
// when email is not configured; delivery failures never fail the request.
type BookingNotifier interface {
	NotifyBookingCreated(instructor *models.Instructor, motorcycle *models.Motorcycle, booking *models.Booking)
	NotifyStatusChanged(instructor *models.Instructor, booking *models.Booking)
}

type BookingController struct {
	bookings    BookingStore
	instructors InstructorStore
	motorcycles MotorcycleStore
	notifier    BookingNotifier
}

func NewBookingController(bookings BookingStore, instructors InstructorStore, motorcycles MotorcycleStore, notifier BookingNotifier) *BookingController {
	return &BookingController{
		bookings:    bookings,
		instructors: instructors,
		motorcycles: motorcycles,
		notifier:    notifier,
	}
}

// CreateBookingRequest mirrors the frontend wire format (camelCase keys).
type CreateBookingRequest struct {
	MotorcycleID uint                `json:"motorcycleId" binding:"required"`
	InstructorID uint                `json:"instructorId" binding:"required"`
	Date         string              `json:"date" binding:"required"`
	TimeSlot     string              `json:"timeSlot" binding:"required,timeslot"`
	Customer     models.CustomerInfo `json:"customer" binding:"required"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse is the camelCase wire representation of a booking, with
// customer fields nested under a single object.
type BookingResponse struct {
	ID           uint                `json:"id"`
	InstructorID uint                `json:"instructorId"`
	MotorcycleID uint                `json:"motorcycleId"`
	Date         string              `json:"date"`
	TimeSlot     string              `json:"timeSlot"`
	Status       string              `json:"status"`
	Customer     models.CustomerInfo `json:"customer"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func newBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		InstructorID: b.InstructorID,
		MotorcycleID: b.MotorcycleID,
		Date:         utils.FormatDate(b.Date),
		TimeSlot:     b.TimeSlot,
		Status:       b.Status,
		Customer:     b.Customer(),
		CreatedAt:    b.CreatedAt,
	}
}

// CreateBooking reserves a slot with an instructor. The booking starts out
// "pending"; a second booking for the same (instructor, date, timeSlot)
// fails with 409 through the database uniqueness constraint.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.SendValidationError(c, "date must be a valid ISO date (YYYY-MM-DD)")
		return
	}

	instructor, err := bc.instructors.GetByID(req.InstructorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendNotFound(c, "Instructor")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Failed to resolve instructor")
		}
		return
	}

	motorcycle, err := bc.motorcycles.GetByID(req.MotorcycleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendNotFound(c, "Motorcycle")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Failed to resolve motorcycle")
		}
		return
	}

	booking := models.Booking{
		InstructorID:     instructor.ID,
		MotorcycleID:     motorcycle.ID,
		Date:             date,
		TimeSlot:         req.TimeSlot,
		Status:           models.BookingStatusPending,
		CustomerName:     req.Customer.Name,
		CustomerSurname:  req.Customer.Surname,
		CustomerGender:   req.Customer.Gender,
		CustomerAge:      req.Customer.Age,
		CustomerHeightCm: req.Customer.HeightCm,
		CustomerPhone:    req.Customer.Phone,
	}

	if err := bc.bookings.Create(&booking); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlot) {
			utils.SendConflict(c, "This time slot is already booked for the selected instructor")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if bc.notifier != nil {
		bc.notifier.NotifyBookingCreated(instructor, motorcycle, &booking)
	}

	c.JSON(http.StatusCreated, newBookingResponse(&booking))
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.bookings.List()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = newBookingResponse(&bookings[i])
	}

	c.JSON(http.StatusOK, responses)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, ok := bc.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newBookingResponse(booking))
}

// UpdateBooking sets the booking status. Any of the three states may be set
// from any other; transitions are caller-driven.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	booking, ok := bc.lookup(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if !models.ValidBookingStatus(req.Status) {
		utils.SendValidationError(c, "status must be one of: pending, confirmed, cancelled")
		return
	}

	if err := bc.bookings.UpdateStatus(booking, req.Status); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if bc.notifier != nil {
		if instructor, err := bc.instructors.GetByID(booking.InstructorID); err == nil {
			bc.notifier.NotifyStatusChanged(instructor, booking)
		}
	}

	c.JSON(http.StatusOK, newBookingResponse(booking))
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	booking, ok := bc.lookup(c)
	if !ok {
		return
	}

	if err := bc.bookings.Delete(booking); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func (bc *BookingController) lookup(c *gin.Context) (*models.Booking, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "id must be an integer")
		return nil, false
	}

	booking, err := bc.bookings.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendNotFound(c, "Booking")
		} else {
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch booking")
		}
		return nil, false
	}

	return booking, true
}
