package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/keyfold/authd/pkg/jwtx"
)

type Config struct {
	Issuer string // Optional: issuer claim for tokens (default: authd)

	// AccessSecret and RefreshSecret sign the two token kinds. They are
	// configured independently; deriving one from the other gives no
	// real key separation.
	AccessSecret  string
	RefreshSecret string

	AccessTTL  time.Duration // Optional: access token lifetime (default: 1h)
	RefreshTTL time.Duration // Optional: refresh token lifetime (default: 12h)

	OTPBaseURL string        // Required: base URL of the remote OTP service
	OTPTimeout time.Duration // Optional: per-call timeout for OTP requests (default: 5s)

	DatabaseFile string // Optional: path to SQLite database file (default: ./authd.db)
	PepperFile   string // Optional: path to password pepper file (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("AUTHD_ISSUER", "authd"),
		AccessSecret:        os.Getenv("AUTHD_JWT_ACCESS_SECRET"),
		RefreshSecret:       os.Getenv("AUTHD_JWT_REFRESH_SECRET"),
		AccessTTL:           getEnvDurationOrDefault("AUTHD_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:          getEnvDurationOrDefault("AUTHD_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),
		OTPBaseURL:          os.Getenv("AUTHD_OTP_BASE_URL"),
		OTPTimeout:          getEnvDurationOrDefault("AUTHD_OTP_TIMEOUT", 5*time.Second),
		DatabaseFile:        getEnvOrDefault("AUTHD_DATABASE_FILE", "authd.db"),
		PepperFile:          getEnvOrDefault("AUTHD_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations the service cannot safely run with.
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("config: AUTHD_JWT_ACCESS_SECRET is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("config: AUTHD_JWT_REFRESH_SECRET is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("config: access and refresh secrets must differ")
	}
	if c.OTPBaseURL == "" {
		return errors.New("config: AUTHD_OTP_BASE_URL is required")
	}
	return nil
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
