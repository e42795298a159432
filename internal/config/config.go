package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the client and the development API
type Config struct {
	APIBaseURL     string
	ConsultBaseURL string
	HTTPTimeout    time.Duration
	TipsCacheTTL   time.Duration
	StateDir       string
	ReportDir      string
	Storage        StorageConfig
	Log            LogConfig
	DevAPI         DevAPIConfig
	ServiceName    string
}

// StorageConfig selects where the on-device state (token, user, cached tips) lives
type StorageConfig struct {
	Driver        string // sqlite, mysql or redis
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// DevAPIConfig holds settings for the development stand-in of the platform API
type DevAPIConfig struct {
	Port                 string
	Origin               string
	JWTSecret            string
	JWTExpirationMinutes int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	stateDir := getEnv("STATE_DIR", filepath.Join(home, ".drepalife"))

	timeoutSeconds, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %w", err)
	}

	tipsCacheMinutes, err := strconv.Atoi(getEnv("TIPS_CACHE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIPS_CACHE_MINUTES: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	storage := StorageConfig{
		Driver:        getEnv("STORAGE_DRIVER", "sqlite"),
		DSN:           getEnv("STORAGE_DSN", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		KeyPrefix:     getEnv("STORAGE_KEY_PREFIX", "drepalife"),
	}
	switch storage.Driver {
	case "sqlite":
		if storage.DSN == "" {
			storage.DSN = filepath.Join(stateDir, "state.db")
		}
	case "mysql":
		if storage.DSN == "" {
			return nil, fmt.Errorf("STORAGE_DSN is required for the mysql storage driver")
		}
	case "redis":
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q", storage.Driver)
	}

	apiBaseURL := getEnv("DREPALIFE_API_URL", "http://localhost:3000")

	return &Config{
		APIBaseURL:     apiBaseURL,
		ConsultBaseURL: getEnv("DREPALIFE_CONSULT_URL", apiBaseURL),
		HTTPTimeout:    time.Duration(timeoutSeconds) * time.Second,
		TipsCacheTTL:   time.Duration(tipsCacheMinutes) * time.Minute,
		StateDir:       stateDir,
		ReportDir:      getEnv("REPORT_DIR", filepath.Join(stateDir, "reports")),
		Storage:        storage,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		DevAPI: DevAPIConfig{
			Port:                 getEnv("PORT", "3000"),
			Origin:               getEnv("ORIGIN", "http://localhost:8081"),
			JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
			JWTExpirationMinutes: jwtExpMinutes,
		},
		ServiceName: getEnv("SERVICE_NAME", "drepalife"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
