package config

import (
	"os"
	"strconv"
	"strings"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort            string
	LogLevel              string
	GeminiAPIKey          string
	GeminiModel           string
	CloudinaryCloudName   string
	CloudinaryAPIKey      string
	CloudinaryAPISecret   string
	RequestTimeoutSeconds int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:            getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:          getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		CloudinaryCloudName:   getEnvOrDefault("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:      getEnvOrDefault("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:   getEnvOrDefault("CLOUDINARY_API_SECRET", ""),
		RequestTimeoutSeconds: getEnvIntOrDefault("REQUEST_TIMEOUT", 120),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiAPIKey returns the Gemini API key
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGeminiModel returns the Gemini model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetCloudinaryCloudName returns the Cloudinary cloud name
func (c *AppConfig) GetCloudinaryCloudName() string {
	return c.CloudinaryCloudName
}

// GetCloudinaryAPIKey returns the Cloudinary API key
func (c *AppConfig) GetCloudinaryAPIKey() string {
	return c.CloudinaryAPIKey
}

// GetCloudinaryAPISecret returns the Cloudinary API secret
func (c *AppConfig) GetCloudinaryAPISecret() string {
	return c.CloudinaryAPISecret
}

// GetRequestTimeoutSeconds returns the per-request timeout bound
func (c *AppConfig) GetRequestTimeoutSeconds() int {
	return c.RequestTimeoutSeconds
}

// Validate checks that every credential required to reach the external
// backends is present. A missing credential fails startup rather than
// producing a garbled call later.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.CloudinaryCloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if c.CloudinaryAPIKey == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if c.CloudinaryAPISecret == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	if len(missing) > 0 {
		return errors.NewConfigError("missing required environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
