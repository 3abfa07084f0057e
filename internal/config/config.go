package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the admin client.
type Config struct {
	API        APIConfig
	Logger     LoggerConfig
	TokenStore TokenStoreConfig
	Redis      RedisConfig
	Mock       MockConfig
}

// APIConfig points the client at the ERP backend.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// TokenStoreConfig selects where the session token pair is persisted.
type TokenStoreConfig struct {
	Backend string // file, redis, memory
	Path    string // file backend location
}

// RedisConfig holds connection values for the redis token store backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MockConfig configures the local mock ERP backend (cmd/mockerp).
type MockConfig struct {
	Host                  string
	Port                  string
	JWTSecret             string
	AccessTokenTTLMinutes int
	RefreshTokenTTLHours  int
	BcryptCost            int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnv("ERP_API_BASE_URL", "http://127.0.0.1:8000/api/v1"),
			TimeoutSeconds: getEnvAsInt("ERP_HTTP_TIMEOUT_SECONDS", 5),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		TokenStore: TokenStoreConfig{
			Backend: getEnv("ERP_TOKEN_STORE", "file"),
			Path:    getEnv("ERP_TOKEN_STORE_PATH", defaultTokenPath()),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Mock: MockConfig{
			Host:                  getEnv("MOCK_HOST", "127.0.0.1"),
			Port:                  getEnv("MOCK_PORT", "8000"),
			JWTSecret:             getEnv("MOCK_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("MOCK_ACCESS_TOKEN_TTL_MINUTES", 30),
			RefreshTokenTTLHours:  getEnvAsInt("MOCK_REFRESH_TOKEN_TTL_HOURS", 24),
			BcryptCost:            getEnvAsInt("MOCK_BCRYPT_COST", 10),
		},
	}

	return cfg, nil
}

// Timeout returns the per-request timeout ceiling.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Addr returns the mock server bind address.
func (m MockConfig) Addr() string {
	return fmt.Sprintf("%s:%s", m.Host, m.Port)
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".erp-admin", "tokens.json")
	}
	return filepath.Join(dir, "erp-admin", "tokens.json")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
