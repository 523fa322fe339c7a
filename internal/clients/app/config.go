package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIMBaseURL     string        // Required: store services base URL, e.g. https://apim.example.org/store
	APIMTimeout     time.Duration // Optional: per-call timeout for store requests (default: 30s)
	APIMInsecureTLS bool          // Optional: skip store certificate verification (default: false)

	DatabaseDriver string // Optional: consumer-key database driver (sqlite, postgres) (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./clients.db)
	DatabaseURL    string // Required for postgres: connection URL of the API manager database
	Migrate        bool   // Optional: create the side tables on startup (default: true for sqlite only)

	PublicBaseURL string // Optional: base of the hyperlinks in responses (default: http://localhost:8080)
	APIVersion    string // Optional: version of the platform APIs (default: v2)
	APIsFile      string // Optional: YAML file of APIs added to the default set
	DefaultTier   string // Optional: tier for new clients and subscriptions (default: Unlimited)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		APIMBaseURL:     os.Getenv("CLIENTS_APIM_BASE_URL"),
		APIMTimeout:     getEnvDurationOrDefault("CLIENTS_APIM_TIMEOUT", 30*time.Second),
		APIMInsecureTLS: getEnvBoolOrDefault("CLIENTS_APIM_INSECURE_TLS", false),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("CLIENTS_DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("CLIENTS_DATABASE_FILE", "clients.db"),
		DatabaseURL:    os.Getenv("CLIENTS_DATABASE_URL"),

		PublicBaseURL: getEnvOrDefault("CLIENTS_PUBLIC_BASE_URL", "http://localhost:8080"),
		APIVersion:    getEnvOrDefault("CLIENTS_API_VERSION", "v2"),
		APIsFile:      os.Getenv("CLIENTS_APIS_FILE"),
		DefaultTier:   getEnvOrDefault("CLIENTS_DEFAULT_TIER", "Unlimited"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The API manager owns its schema; only the standalone SQLite store is
	// ours to migrate unless asked.
	cfg.Migrate = getEnvBoolOrDefault("CLIENTS_DATABASE_MIGRATE", cfg.DatabaseDriver == "sqlite")

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
