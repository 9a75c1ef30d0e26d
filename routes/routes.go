package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"motovasiya-api/config"
	"motovasiya-api/controllers"
	"motovasiya-api/middleware"
	"motovasiya-api/repositories"
	"motovasiya-api/services"
	"motovasiya-api/utils"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	registerValidations()

	// Repositories
	instructorRepo := repositories.NewInstructorRepository(db)
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	// Services
	emailService := services.NewEmailService(cfg)

	// Controllers
	authController := controllers.NewAuthController(instructorRepo, cfg.JWTSecret)
	instructorController := controllers.NewInstructorController(instructorRepo)
	motorcycleController := controllers.NewMotorcycleController(motorcycleRepo)
	bookingController := controllers.NewBookingController(bookingRepo, instructorRepo, motorcycleRepo, emailService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret, instructorRepo)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret, instructorRepo)
	requireAdmin := middleware.AdminRequired()
	publicRate := middleware.RateLimit(30, 10)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", publicRate, authController.Login)
	}

	// Instructor routes
	instructors := r.Group("/instructors")
	{
		instructors.GET("", optionalAuth, instructorController.GetInstructors)
		instructors.GET("/:id", requireAuth, instructorController.GetInstructor)
		instructors.POST("", requireAuth, requireAdmin, instructorController.CreateInstructor)
		instructors.PATCH("/:id", requireAuth, requireAdmin, instructorController.UpdateInstructor)
		instructors.DELETE("/:id", requireAuth, requireAdmin, instructorController.DeleteInstructor)
		instructors.POST("/:id/toggle_status", requireAuth, requireAdmin, instructorController.ToggleStatus)
	}

	// Motorcycle routes
	motorcycles := r.Group("/motorcycles")
	{
		motorcycles.GET("", optionalAuth, motorcycleController.GetMotorcycles)
		motorcycles.GET("/:id", requireAuth, motorcycleController.GetMotorcycle)
		motorcycles.POST("", requireAuth, requireAdmin, motorcycleController.CreateMotorcycle)
		motorcycles.PATCH("/:id", requireAuth, requireAdmin, motorcycleController.UpdateMotorcycle)
		motorcycles.DELETE("/:id", requireAuth, requireAdmin, motorcycleController.DeleteMotorcycle)
	}

	// Booking routes (create is public, management is admin)
	bookings := r.Group("/bookings")
	{
		bookings.POST("", publicRate, bookingController.CreateBooking)
		bookings.GET("", requireAuth, requireAdmin, bookingController.GetBookings)
		bookings.GET("/:id", requireAuth, requireAdmin, bookingController.GetBooking)
		bookings.PATCH("/:id", requireAuth, requireAdmin, bookingController.UpdateBooking)
		bookings.DELETE("/:id", requireAuth, requireAdmin, bookingController.DeleteBooking)
	}
}

// registerValidations adds custom binding validations to gin's validator.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			return utils.IsValidTimeSlot(fl.Field().String())
		})
	}
}

// SetupCORS configures CORS middleware
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
