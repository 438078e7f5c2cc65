package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	NotificationsTable string

	SMTPHost     string
	SMTPPort     string
	SMTPLogin    string
	SMTPPassword string
	SMTPEmail    string // sender address
	SMTPName     string // sender display name

	// NotifyEmail receives a copy of every created notification.
	// When empty, the email side effect is skipped with a logged warning.
	NotifyEmail string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		NotificationsTable: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPLogin:    getEnv("SMTP_LOGIN", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPEmail:    getEnv("SMTP_EMAIL", "noreply@example.com"),
		SMTPName:     getEnv("SMTP_NAME", ""),

		NotifyEmail: getEnv("EMAIL", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
