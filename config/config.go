package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_BACKEND_URL          = "http://localhost:5000"
	DEFAULT_PORT                 = "8080"
	DEFAULT_FRONTEND_ORIGIN      = "http://localhost:3000"
	DEFAULT_API_URL              = "http://localhost:8080"
	DEFAULT_DEV_BACKEND_PORT     = "5000"
	DEFAULT_HEALTHCHECK_INTERVAL = 15 * time.Second
)

// BackendURL is read on every call so a changed BACKEND_URL is picked up by
// the next request.
func BackendURL() string {
	return getEnv("BACKEND_URL", DEFAULT_BACKEND_URL)
}

func Port() string {
	return getEnv("PORT", DEFAULT_PORT)
}

func DevBackendPort() string {
	return getEnv("DEV_BACKEND_PORT", DEFAULT_DEV_BACKEND_PORT)
}

// APIURL is the base URL the terminal client uses to reach /api/predict.
func APIURL() string {
	return getEnv("SENTIMENT_API_URL", DEFAULT_API_URL)
}

func AllowedOrigins() []string {
	origins := []string{DEFAULT_FRONTEND_ORIGIN}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" && frontendURL != DEFAULT_FRONTEND_ORIGIN {
		origins = append(origins, frontendURL)
	}
	return origins
}

func HealthInterval() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("HEALTHCHECK_INTERVAL"))
	if err != nil || seconds <= 0 {
		return DEFAULT_HEALTHCHECK_INTERVAL
	}
	return time.Duration(seconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
