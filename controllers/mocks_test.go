package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"motovasiya-api/models"
	"motovasiya-api/repositories"
	"motovasiya-api/utils"
)

func init() {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			return utils.IsValidTimeSlot(fl.Field().String())
		})
	}
}

// Mock stores with overridable behavior per test

type mockInstructorStore struct {
	listFunc       func(onlyActive bool) ([]models.Instructor, error)
	getByIDFunc    func(id uint) (*models.Instructor, error)
	getByEmailFunc func(email string) (*models.Instructor, error)
	createFunc     func(instructor *models.Instructor) error
	updateFunc     func(instructor *models.Instructor, updates map[string]interface{}) error
	toggleFunc     func(instructor *models.Instructor) error
	deleteFunc     func(instructor *models.Instructor) error
}

func (m *mockInstructorStore) List(onlyActive bool) ([]models.Instructor, error) {
	if m.listFunc != nil {
		return m.listFunc(onlyActive)
	}
	return []models.Instructor{}, nil
}

func (m *mockInstructorStore) GetByID(id uint) (*models.Instructor, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockInstructorStore) GetByEmail(email string) (*models.Instructor, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(email)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockInstructorStore) Create(instructor *models.Instructor) error {
	if m.createFunc != nil {
		return m.createFunc(instructor)
	}
	instructor.ID = 1
	return nil
}

func (m *mockInstructorStore) Update(instructor *models.Instructor, updates map[string]interface{}) error {
	if m.updateFunc != nil {
		return m.updateFunc(instructor, updates)
	}
	return nil
}

func (m *mockInstructorStore) ToggleActive(instructor *models.Instructor) error {
	if m.toggleFunc != nil {
		return m.toggleFunc(instructor)
	}
	instructor.Active = !instructor.Active
	return nil
}

func (m *mockInstructorStore) Delete(instructor *models.Instructor) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(instructor)
	}
	return nil
}

type mockMotorcycleStore struct {
	listFunc    func(onlyActive bool) ([]models.Motorcycle, error)
	getByIDFunc func(id uint) (*models.Motorcycle, error)
	createFunc  func(motorcycle *models.Motorcycle) error
	updateFunc  func(motorcycle *models.Motorcycle, updates map[string]interface{}) error
	deleteFunc  func(motorcycle *models.Motorcycle) error
}

func (m *mockMotorcycleStore) List(onlyActive bool) ([]models.Motorcycle, error) {
	if m.listFunc != nil {
		return m.listFunc(onlyActive)
	}
	return []models.Motorcycle{}, nil
}

func (m *mockMotorcycleStore) GetByID(id uint) (*models.Motorcycle, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockMotorcycleStore) Create(motorcycle *models.Motorcycle) error {
	if m.createFunc != nil {
		return m.createFunc(motorcycle)
	}
	motorcycle.ID = 1
	return nil
}

func (m *mockMotorcycleStore) Update(motorcycle *models.Motorcycle, updates map[string]interface{}) error {
	if m.updateFunc != nil {
		return m.updateFunc(motorcycle, updates)
	}
	return nil
}

func (m *mockMotorcycleStore) Delete(motorcycle *models.Motorcycle) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(motorcycle)
	}
	return nil
}

type mockBookingStore struct {
	listFunc         func() ([]models.Booking, error)
	getByIDFunc      func(id uint) (*models.Booking, error)
	createFunc       func(booking *models.Booking) error
	updateStatusFunc func(booking *models.Booking, status string) error
	deleteFunc       func(booking *models.Booking) error
}

func (m *mockBookingStore) List() ([]models.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []models.Booking{}, nil
}

func (m *mockBookingStore) GetByID(id uint) (*models.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockBookingStore) Create(booking *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(booking)
	}
	booking.ID = 1
	return nil
}

func (m *mockBookingStore) UpdateStatus(booking *models.Booking, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(booking, status)
	}
	booking.Status = status
	return nil
}

func (m *mockBookingStore) Delete(booking *models.Booking) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(booking)
	}
	return nil
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
