package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	SeedData    bool

	// Interval for the stale-booking cleanup job.
	CleanupInterval time.Duration

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	seed, _ := strconv.ParseBool(getEnv("SEED_DATA", "true"))
	cleanupInterval, err := time.ParseDuration(getEnv("CLEANUP_INTERVAL", "1h"))
	if err != nil {
		cleanupInterval = time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motovasiya?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		SeedData:    seed,

		CleanupInterval: cleanupInterval,

		// Email settings (leave SMTP_HOST empty to disable notifications)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@motovasiya.az"),
		FromName:     getEnv("FROM_NAME", "MotoVasiya"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
