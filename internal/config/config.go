// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // SEARCH_TIMEZONE must resolve in minimal containers too

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the search form server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of origins allowed to call the /api routes.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Location decides which calendar day counts as "today" for the date
	// minimums. Set SEARCH_TIMEZONE to an IANA name. Defaults to UTC.
	Location *time.Location

	// MaxBodyBytes caps request bodies (form posts). Defaults to 1 MiB.
	MaxBodyBytes int64

	// StaticDir, when set, is served under /static/ (stylesheet and the
	// wasm build of the form script). Empty disables the route.
	StaticDir string
}

// Load reads configuration from environment variables and returns a Config.
//
// A dotenv file is read first: ENV_FILE names it, ".env" by default. Variables
// already present in the environment win over the file, and a missing file is
// not an error.
//
// Returns an error listing every variable whose value cannot be used.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: read %s: %w", envFile, err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}

	var invalid []string

	loc, err := time.LoadLocation(getEnv("SEARCH_TIMEZONE", "UTC"))
	if err != nil {
		invalid = append(invalid, "SEARCH_TIMEZONE")
	}
	cfg.Location = loc

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
