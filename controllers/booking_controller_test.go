package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"motovasiya-api/models"
	"motovasiya-api/repositories"
)

func testInstructor() *models.Instructor {
	return &models.Instructor{
		ID:      1,
		Name:    "Narmin",
		Surname: "Mammadova",
		Email:   "narmin@motovasiya.az",
		Active:  true,
		IsAdmin: true,
	}
}

func testMotorcycle() *models.Motorcycle {
	return &models.Motorcycle{
		ID:     1,
		Name:   "Bajaj Pulsar NS160",
		Active: true,
	}
}

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"motorcycleId": 1,
		"instructorId": 1,
		"date":         "2026-09-01",
		"timeSlot":     "10:00",
		"customer": map[string]interface{}{
			"name":     "Demo",
			"surname":  "User",
			"gender":   "Male",
			"age":      25,
			"heightCm": 175,
			"phone":    "+994 50 000 00 00",
		},
	}
}

func bookingTestRouter(bookings *mockBookingStore, instructors *mockInstructorStore, motorcycles *mockMotorcycleStore) *gin.Engine {
	bc := NewBookingController(bookings, instructors, motorcycles, nil)

	r := gin.New()
	r.POST("/bookings", bc.CreateBooking)
	r.GET("/bookings", bc.GetBookings)
	r.GET("/bookings/:id", bc.GetBooking)
	r.PATCH("/bookings/:id", bc.UpdateBooking)
	r.DELETE("/bookings/:id", bc.DeleteBooking)
	return r
}

func resolvingStores() (*mockInstructorStore, *mockMotorcycleStore) {
	instructors := &mockInstructorStore{
		getByIDFunc: func(id uint) (*models.Instructor, error) {
			if id == 1 {
				return testInstructor(), nil
			}
			return nil, repositories.ErrNotFound
		},
	}
	motorcycles := &mockMotorcycleStore{
		getByIDFunc: func(id uint) (*models.Motorcycle, error) {
			if id == 1 {
				return testMotorcycle(), nil
			}
			return nil, repositories.ErrNotFound
		},
	}
	return instructors, motorcycles
}

func TestCreateBooking_Success(t *testing.T) {
	instructors, motorcycles := resolvingStores()
	bookings := &mockBookingStore{
		createFunc: func(b *models.Booking) error {
			b.ID = 42
			b.CreatedAt = time.Now()
			return nil
		},
	}
	r := bookingTestRouter(bookings, instructors, motorcycles)

	w := performRequest(t, r, http.MethodPost, "/bookings", validBookingBody())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	decodeBody(t, w, &resp)

	if resp["status"] != models.BookingStatusPending {
		t.Errorf("expected status %q, got %v", models.BookingStatusPending, resp["status"])
	}
	if resp["id"] != float64(42) {
		t.Errorf("expected id 42, got %v", resp["id"])
	}
	if resp["instructorId"] != float64(1) || resp["motorcycleId"] != float64(1) {
		t.Errorf("expected camelCase reference ids, got %v", resp)
	}
	if resp["date"] != "2026-09-01" || resp["timeSlot"] != "10:00" {
		t.Errorf("unexpected slot fields: date=%v timeSlot=%v", resp["date"], resp["timeSlot"])
	}

	// The customer object must mirror the submitted fields with camelCase keys.
	customer, ok := resp["customer"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested customer object, got %v", resp["customer"])
	}
	want := map[string]interface{}{
		"name":     "Demo",
		"surname":  "User",
		"gender":   "Male",
		"age":      float64(25),
		"heightCm": float64(175),
		"phone":    "+994 50 000 00 00",
	}
	for key, value := range want {
		if customer[key] != value {
			t.Errorf("customer[%q] = %v, want %v", key, customer[key], value)
		}
	}
	if _, exists := customer["height_cm"]; exists {
		t.Error("customer must use heightCm, not height_cm")
	}
}

func TestCreateBooking_DuplicateSlot(t *testing.T) {
	instructors, motorcycles := resolvingStores()

	// First insert succeeds, the second hits the unique index.
	created := 0
	bookings := &mockBookingStore{
		createFunc: func(b *models.Booking) error {
			if created > 0 {
				return repositories.ErrDuplicateSlot
			}
			created++
			b.ID = 1
			return nil
		},
	}
	r := bookingTestRouter(bookings, instructors, motorcycles)

	first := performRequest(t, r, http.MethodPost, "/bookings", validBookingBody())
	if first.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d: %s", first.Code, first.Body.String())
	}

	second := performRequest(t, r, http.MethodPost, "/bookings", validBookingBody())
	if second.Code != http.StatusConflict {
		t.Fatalf("second create: expected 409, got %d: %s", second.Code, second.Body.String())
	}
	if created != 1 {
		t.Errorf("expected exactly one row created, got %d", created)
	}
}

func TestCreateBooking_UnknownReferences(t *testing.T) {
	instructors, motorcycles := resolvingStores()
	r := bookingTestRouter(&mockBookingStore{}, instructors, motorcycles)

	body := validBookingBody()
	body["instructorId"] = 99
	w := performRequest(t, r, http.MethodPost, "/bookings", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown instructor: expected 404, got %d", w.Code)
	}

	body = validBookingBody()
	body["motorcycleId"] = 99
	w = performRequest(t, r, http.MethodPost, "/bookings", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown motorcycle: expected 404, got %d", w.Code)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	instructors, motorcycles := resolvingStores()
	r := bookingTestRouter(&mockBookingStore{}, instructors, motorcycles)

	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
	}{
		{
			name:   "missing instructorId",
			mutate: func(b map[string]interface{}) { delete(b, "instructorId") },
		},
		{
			name:   "missing customer",
			mutate: func(b map[string]interface{}) { delete(b, "customer") },
		},
		{
			name: "missing customer phone",
			mutate: func(b map[string]interface{}) {
				delete(b["customer"].(map[string]interface{}), "phone")
			},
		},
		{
			name: "non-integer age",
			mutate: func(b map[string]interface{}) {
				b["customer"].(map[string]interface{})["age"] = "twenty"
			},
		},
		{
			name:   "malformed date",
			mutate: func(b map[string]interface{}) { b["date"] = "01.09.2026" },
		},
		{
			name:   "malformed time slot",
			mutate: func(b map[string]interface{}) { b["timeSlot"] = "25:99" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBookingBody()
			tt.mutate(body)

			w := performRequest(t, r, http.MethodPost, "/bookings", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateBooking_Status(t *testing.T) {
	instructors, motorcycles := resolvingStores()
	stored := &models.Booking{
		ID:           7,
		InstructorID: 1,
		MotorcycleID: 1,
		Date:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:     "10:00",
		Status:       models.BookingStatusPending,
	}
	bookings := &mockBookingStore{
		getByIDFunc: func(id uint) (*models.Booking, error) {
			if id == 7 {
				return stored, nil
			}
			return nil, repositories.ErrNotFound
		},
	}
	r := bookingTestRouter(bookings, instructors, motorcycles)

	w := performRequest(t, r, http.MethodPatch, "/bookings/7", map[string]string{"status": "confirmed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	decodeBody(t, w, &resp)
	if resp["status"] != models.BookingStatusConfirmed {
		t.Errorf("expected confirmed status, got %v", resp["status"])
	}

	w = performRequest(t, r, http.MethodPatch, "/bookings/7", map[string]string{"status": "done"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodPatch, "/bookings/8", map[string]string{"status": "confirmed"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown booking: expected 404, got %d", w.Code)
	}
}

func TestGetBookings(t *testing.T) {
	instructors, motorcycles := resolvingStores()
	bookings := &mockBookingStore{
		listFunc: func() ([]models.Booking, error) {
			return []models.Booking{
				{
					ID:           1,
					InstructorID: 1,
					MotorcycleID: 1,
					Date:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
					TimeSlot:     "10:00",
					Status:       models.BookingStatusConfirmed,
					CustomerName: "Demo",
				},
			}, nil
		},
	}
	r := bookingTestRouter(bookings, instructors, motorcycles)

	w := performRequest(t, r, http.MethodGet, "/bookings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]interface{}
	decodeBody(t, w, &resp)
	if len(resp) != 1 {
		t.Fatalf("expected one booking, got %d", len(resp))
	}
	if resp[0]["timeSlot"] != "10:00" {
		t.Errorf("expected camelCase timeSlot key, got %v", resp[0])
	}
}
