package common

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr           string
	MaxUploadBytes int64
}

// ExtractConfig holds extraction-catalog configuration.
type ExtractConfig struct {
	// CatalogPath optionally points at a JSON catalog overriding the built-in
	// header patterns, cost labels and region markers.
	CatalogPath string
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level slog.Level
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":" + getEnv("PORT", "8080"),
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 16<<20),
		},
		Extract: ExtractConfig{
			CatalogPath: getEnv("EXTRACT_CATALOG", ""),
		},
		Logging: LoggingConfig{
			Level: parseLogLevel(getEnv("LOG_LEVEL", "info")),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
