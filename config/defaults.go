// Package config provides centralized default values for pagetags
package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

// loadEnvFile loads environment variables from .env file
func loadEnvFile() {
	envLoaded.Do(func() {
		loadEnvFileOnce()
	})
}

func loadEnvFileOnce() {
	file, err := os.Open(".env")
	if err != nil {
		// .env file is optional, don't error if it doesn't exist
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on first = sign
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Only set if not already set in environment
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

func init() {
	// Ensure .env is loaded before any config access
	loadEnvFile()
}

// getEnvInt reads environment variable with fallback to default
func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvIntList reads a comma-separated integer list with fallback to default
func getEnvIntList(key string, defaultValue []int) []int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parts := strings.Split(val, ",")
	parsed := make([]int, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n > 0 {
			parsed = append(parsed, n)
		}
	}
	if len(parsed) == 0 {
		return defaultValue
	}
	return parsed
}

// getEnvString reads environment variable with string fallback
func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// Server Configuration
var (
	Port = getEnvString("PORT", "8080")
)

// Render Configuration
var (
	MaxRenderBytes = getEnvInt("MAX_RENDER_BYTES", 1<<20)
)

// Cache Configuration
var (
	FragmentCacheTTL = time.Duration(getEnvInt("FRAGMENT_CACHE_TTL_MINUTES", 60)) * time.Minute
	CleanupInterval  = time.Duration(getEnvInt("CACHE_CLEANUP_INTERVAL_MINUTES", 30)) * time.Minute
)

// Database Configuration
var (
	DBDriver    = getEnvString("DB_DRIVER", "sqlite3")
	SQLitePath  = getEnvString("SQLITE_PATH", "pagetags.db")
	LibSQLURL   = getEnvString("LIBSQL_DATABASE_URL", "")
	LibSQLToken = getEnvString("LIBSQL_AUTH_TOKEN", "")
)

// Auth Configuration
var (
	JWTSecret         = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
)

// Media Configuration
var (
	MediaDir = getEnvString("MEDIA_DIR", "media")

	// Widths of the responsive renditions generated for full-bleed assets.
	BackgroundVariantWidths = getEnvIntList("VARIANT_WIDTHS", []int{1920, 1080, 600})
)
