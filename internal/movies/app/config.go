package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Issuer claim for session tokens
	JWTSecret string // Required: shared HS256 signing secret

	StoreDriver   string // Store driver (mongo, sqlite) (default: sqlite)
	MongoURI      string // Mongo connection string (required when driver is mongo)
	MongoDatabase string // Mongo database name (default: bruinmovies)
	DatabaseFile  string // Path to SQLite database file (default: ./bruinmovies.db)

	LoginKey    string        // Which identifier sign-in matches on (email, username) (default: email)
	PasscodeTTL time.Duration // Passcode validity window (default: 10m)
	SessionTTL  time.Duration // Session token validity window (default: 1h)

	MailDriver   string // Mail driver (smtp, log) (default: smtp; log only allowed in dev)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("MOVIES_ISSUER", "bruinmovies"),
		JWTSecret: os.Getenv("MOVIES_JWT_SECRET"),

		StoreDriver:   getEnvOrDefault("MOVIES_STORE_DRIVER", "sqlite"),
		MongoURI:      os.Getenv("MOVIES_MONGO_URI"),
		MongoDatabase: getEnvOrDefault("MOVIES_MONGO_DATABASE", "bruinmovies"),
		DatabaseFile:  getEnvOrDefault("MOVIES_DATABASE_FILE", "bruinmovies.db"),

		LoginKey:    getEnvOrDefault("MOVIES_LOGIN_KEY", "email"),
		PasscodeTTL: getEnvDurationOrDefault("MOVIES_PASSCODE_TTL", 10*time.Minute),
		SessionTTL:  getEnvDurationOrDefault("MOVIES_SESSION_TTL", time.Hour),

		MailDriver:   getEnvOrDefault("MOVIES_MAIL_DRIVER", "smtp"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
