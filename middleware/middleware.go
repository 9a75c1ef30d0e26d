package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"motovasiya-api/models"
)

// Context keys set by the auth middlewares.
const (
	ContextInstructorID = "instructor_id"
	ContextEmail        = "email"
	ContextIsAdmin      = "is_admin"
	ContextAuthed       = "authenticated"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// InstructorLoader resolves the instructor a token belongs to. Admin status
// is read from the row on every request, never trusted from the token.
type InstructorLoader interface {
	GetByID(id uint) (*models.Instructor, error)
}

func parseToken(c *gin.Context, jwtSecret string) (*jwt.Token, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return nil, fmt.Errorf("authorization header must be a bearer token")
	}

	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
}

func resolveInstructor(c *gin.Context, jwtSecret string, instructors InstructorLoader) (*models.Instructor, error) {
	token, err := parseToken(c, jwtSecret)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	id, ok := claims["instructor_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("token missing instructor_id claim")
	}

	instructor, err := instructors.GetByID(uint(id))
	if err != nil {
		return nil, fmt.Errorf("instructor no longer exists")
	}
	return instructor, nil
}

// AuthMiddleware rejects requests without a valid instructor token.
func AuthMiddleware(jwtSecret string, instructors InstructorLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		instructor, err := resolveInstructor(c, jwtSecret, instructors)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Authentication required",
				Message: err.Error(),
				Code:    http.StatusUnauthorized,
			})
			return
		}

		c.Set(ContextInstructorID, instructor.ID)
		c.Set(ContextEmail, instructor.Email)
		c.Set(ContextIsAdmin, instructor.IsAdmin)
		c.Set(ContextAuthed, true)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a token is present but lets
// unauthenticated requests through. List endpoints use it to decide between
// the public (active-only) and the full view.
func OptionalAuth(jwtSecret string, instructors InstructorLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if instructor, err := resolveInstructor(c, jwtSecret, instructors); err == nil {
				c.Set(ContextInstructorID, instructor.ID)
				c.Set(ContextEmail, instructor.Email)
				c.Set(ContextIsAdmin, instructor.IsAdmin)
				c.Set(ContextAuthed, true)
			}
		}
		c.Next()
	}
}

// AdminRequired must run after AuthMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Error: "Admin access required",
				Code:  http.StatusForbidden,
			})
			return
		}
		c.Next()
	}
}

// RateLimiter implements a simple rate limiting mechanism
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mutex    sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerMinute int, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

// GetLimiter returns the rate limiter for a given key (IP address)
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

// CleanupLimiters removes old limiters to prevent memory leaks
func (rl *RateLimiter) CleanupLimiters() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	for key, limiter := range rl.limiters {
		if limiter.Allow() == false {
			// If limiter is at capacity, keep it
			continue
		}
		delete(rl.limiters, key)
	}
}

// RateLimit middleware, applied to the public booking and login endpoints.
func RateLimit(requestsPerMinute int, burst int) gin.HandlerFunc {
	rateLimiter := NewRateLimiter(requestsPerMinute, burst)

	go func() {
		ticker := time.NewTicker(time.Minute * 10)
		defer ticker.Stop()

		for range ticker.C {
			rateLimiter.CleanupLimiters()
		}
	}()

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := rateLimiter.GetLimiter(clientIP)

		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

			c.JSON(http.StatusTooManyRequests, ErrorResponse{
				Error:   "Rate limit exceeded",
				Message: fmt.Sprintf("Too many requests. Limit: %d requests per minute", requestsPerMinute),
				Code:    http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestID tags each request with a correlation id, echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger middleware for detailed request logging
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		requestID := c.GetString("request_id")

		if raw != "" {
			path = path + "?" + raw
		}

		fmt.Printf("[%s] %s %s %s %d %v\n",
			clientIP,
			requestID,
			method,
			path,
			status,
			latency,
		)
	}
}

// SecurityHeaders middleware adds security headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
