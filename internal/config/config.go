package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration
	AllowedOrigins []string `json:"allowed_origins"`

	// Tracing configuration
	TracingEnabled bool   `json:"tracing_enabled"`
	ServiceName    string `json:"service_name"`
	OTLPEndpoint   string `json:"otlp_endpoint"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, Database: %s, DatabaseURL: %s, LogLevel: %s, AllowedOrigins: %v, TracingEnabled: %t}",
		c.Port, c.Host, c.Environment, c.Database.String(), maskDatabaseURL(c.Database.URL), c.LogLevel, c.AllowedOrigins, c.TracingEnabled)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like APP_PORT and DB_URI
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	// DB_URI is the historical name, DATABASE_URL the conventional one
	dbURL := GetEnvWithDefault("DB_URI", os.Getenv("DATABASE_URL"))
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid database URL format: %w", err)
		}
	}

	dbConfig := database.DatabaseConfig{
		Driver:   GetEnvWithDefault("DB_DRIVER", driverFromURL(dbURL)),
		URL:      dbURL,
		Host:     GetEnvWithDefault("DB_HOST", "localhost"),
		Port:     GetEnvWithDefault("DB_PORT", "5432"),
		User:     GetEnvWithDefault("DB_USER", "postgres"),
		Password: GetEnvWithDefault("DB_PASSWORD", ""),
		Name:     GetEnvWithDefault("DB_NAME", "pizza_restaurants"),
		SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
		Path:     GetEnvWithDefault("DB_PATH", sqlitePathFromURL(dbURL)),
	}
	if dbConfig.DialectName() == "" {
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", dbConfig.Driver)
	}

	config := &Config{
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Database:       dbConfig,
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		TracingEnabled: GetEnvAsType("OTEL_ENABLED", false),
		ServiceName:    GetEnvWithDefault("OTEL_SERVICE_NAME", "gin-pizza-restaurants"),
		OTLPEndpoint:   GetEnvWithDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// driverFromURL guesses the driver from the URL scheme
func driverFromURL(dbURL string) string {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return "postgres"
	default:
		return "sqlite"
	}
}

// sqlitePathFromURL extracts the file path of a sqlite:/// URL
func sqlitePathFromURL(dbURL string) string {
	if strings.HasPrefix(dbURL, "sqlite://") {
		return strings.TrimPrefix(dbURL, "sqlite://")
	}
	return "app.db"
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
