package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Master scheduling API (resources, availability, procedures)
	MasterAPIBaseURL     string
	MasterAPIKey         string
	MasterAPIBearerToken string

	// MedCard subscriptions API. Base URL and token fall back to the
	// master API values when unset.
	MedcardBaseURL     string
	MedcardBearerToken string

	// Availability request configuration. The mode-specific identifiers
	// fall back to the generic category/event identifiers when unset.
	AvailabilityInPersonCategoryID   string
	AvailabilityInPersonEventID      string
	AvailabilityTelehealthCategoryID string
	AvailabilityTelehealthEventID    string
	AvailabilityCategoryID           string
	AvailabilityEventID              string
	AvailabilityDurationMinutes      int
	AvailabilityTimeRangeStart       string
	AvailabilityTimeRangeEnd         string

	// Pricing
	PaymentProcedureCode string

	// Resource catalog
	ResourceQueryLimit int

	// Reference-data cache (subscription products). Empty RedisAddr
	// disables caching.
	RedisAddr         string
	RedisPassword     string
	ReferenceCacheTTL time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		MasterAPIBaseURL:     trimTrailingSlash(getEnv("MASTER_API_BASE_URL", "")),
		MasterAPIKey:         getEnv("MASTER_API_KEY", ""),
		MasterAPIBearerToken: getEnv("MASTER_API_BEARER_TOKEN", ""),

		MedcardBaseURL:     trimTrailingSlash(getEnv("MEDCARD_API_BASE_URL", "")),
		MedcardBearerToken: getEnv("MEDCARD_BEARER_TOKEN", ""),

		AvailabilityInPersonCategoryID:   getEnv("AVAILABILITY_INPERSON_CATEGORY_ID", ""),
		AvailabilityInPersonEventID:      getEnv("AVAILABILITY_INPERSON_EVENT_ID", ""),
		AvailabilityTelehealthCategoryID: getEnv("AVAILABILITY_TELEHEALTH_CATEGORY_ID", ""),
		AvailabilityTelehealthEventID:    getEnv("AVAILABILITY_TELEHEALTH_EVENT_ID", ""),
		AvailabilityCategoryID:           getEnv("AVAILABILITY_CATEGORY_ID", ""),
		AvailabilityEventID:              getEnv("AVAILABILITY_EVENT_ID", ""),
		AvailabilityDurationMinutes:      getEnvAsInt("AVAILABILITY_DURATION_MINUTES", 15),
		AvailabilityTimeRangeStart:       getEnv("AVAILABILITY_TIME_RANGE_START", "0800"),
		AvailabilityTimeRangeEnd:         getEnv("AVAILABILITY_TIME_RANGE_END", "1700"),

		PaymentProcedureCode: getEnv("PAYMENT_PROCEDURE_CODE", "99214"),

		ResourceQueryLimit: getEnvAsInt("RESOURCE_QUERY_LIMIT", 1000),

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		ReferenceCacheTTL: getEnvAsDuration("REFERENCE_CACHE_TTL", 5*time.Minute),
	}

	if cfg.MedcardBaseURL == "" {
		cfg.MedcardBaseURL = cfg.MasterAPIBaseURL
	}
	if cfg.MedcardBearerToken == "" {
		cfg.MedcardBearerToken = cfg.MasterAPIBearerToken
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func trimTrailingSlash(value string) string {
	return strings.TrimRight(value, "/")
}
