package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Redis (refresh token store and access-token blacklist)
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	// Auth
	JWTSecret string // Used for signing tokens (min 32 chars)

	// Uploads
	UploadDir          string // Directory where submitted images are stored
	MaxUploadSize      int64  // Maximum image upload size in bytes
	ImageSweepInterval int    // Minutes between orphaned-image sweeps, 0 disables

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// SMTP (email notifications, disabled when host is empty)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "tls", or "starttls"

	// Notification toggles
	EmailNotifyAdminsOnSubmit    bool
	EmailNotifySubmitterOnReview bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Tourism Portal"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/tourismportal?sslmode=disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnvInt("REDIS_PORT", 6379),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production-min-32-chars"),

		UploadDir:          getEnv("UPLOAD_DIR", "./storage"),
		MaxUploadSize:      int64(getEnvInt("MAX_UPLOAD_SIZE", 10*1024*1024)),
		ImageSweepInterval: getEnvInt("IMAGE_SWEEP_INTERVAL", 60),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@localhost"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", ""),
		SMTPTLS:      getEnv("SMTP_TLS", "starttls"),

		EmailNotifyAdminsOnSubmit:    getEnv("EMAIL_NOTIFY_ADMINS_ON_SUBMIT", "true") == "true",
		EmailNotifySubmitterOnReview: getEnv("EMAIL_NOTIFY_SUBMITTER_ON_REVIEW", "true") == "true",

		SiteTitle:   getEnv("SITE_TITLE", "Tourism Portal"),
		SiteTagline: getEnv("SITE_TAGLINE", "Discover and share the region's destinations"),
		SiteFooter:  getEnv("SITE_FOOTER", "Tourism Portal - Discover and share the region's destinations"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != ""
}
