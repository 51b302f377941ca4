package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. All values are read once at
// startup and treated as immutable afterwards.
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogDir      string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// LowQuantity is the stock threshold: an item with quantity at or below
	// it counts as low inventory.
	LowQuantity int

	SessionTTL    time.Duration
	SecureCookies bool

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored.
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "stockroom"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	lowQuantity, err := getEnvInt("LOW_QUANTITY", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid LOW_QUANTITY value: %w", err)
	}
	if lowQuantity < 0 {
		return nil, fmt.Errorf("LOW_QUANTITY must be non-negative, got %d", lowQuantity)
	}
	cfg.LowQuantity = lowQuantity

	ttlHours, err := getEnvInt("SESSION_TTL_HOURS", 336)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS value: %w", err)
	}
	if ttlHours <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", ttlHours)
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	cfg.SecureCookies = cfg.Environment != "dev" && cfg.Environment != "development"

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
