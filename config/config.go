package config

import (
	"os"
	"strconv"
)

// AppConfig holds the service configuration, sourced from the environment.
type AppConfig struct {
	Port             string
	Environment      string
	MaxUploadBytes   int64
	EnableNameTagger bool
}

// GetAppConfig reads configuration from environment variables with sensible
// defaults. The upload cap defaults to 16MB.
func GetAppConfig() AppConfig {
	maxUploadMB, err := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "16"), 10, 64)
	if err != nil || maxUploadMB <= 0 {
		maxUploadMB = 16
	}

	return AppConfig{
		Port:             getEnv("PORT", "8081"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		MaxUploadBytes:   maxUploadMB * 1024 * 1024,
		EnableNameTagger: getEnvBool("ENABLE_NAME_TAGGER", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
