package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	TaxConfigPath      string
	RunMigrations      bool
	RunSeed            bool
	SeedDemoUsername   string
	SeedDemoPassword   string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	MinAnnualSalary    float64
	RothIRALimit       float64
	SessionTTL         time.Duration
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Environment:        getEnv("APP_ENV", "development"),
		TaxConfigPath:      getEnv("TAX_CONFIG_PATH", "taxyear.toml"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", false),
		SeedDemoUsername:   getEnv("SEED_DEMO_USERNAME", ""),
		SeedDemoPassword:   getEnv("SEED_DEMO_PASSWORD", ""),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		MinAnnualSalary:    getEnvFloat("MIN_ANNUAL_SALARY", 80000),
		RothIRALimit:       getEnvFloat("ROTH_IRA_LIMIT", 7000),
		SessionTTL:         getEnvDuration("SESSION_TTL", 8*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.MinAnnualSalary < 0 {
		return fmt.Errorf("MIN_ANNUAL_SALARY must be non-negative")
	}
	if c.RothIRALimit < 0 {
		return fmt.Errorf("ROTH_IRA_LIMIT must be non-negative")
	}
	if c.RunSeed && (c.SeedDemoUsername == "" || c.SeedDemoPassword == "") {
		return fmt.Errorf("SEED_DEMO_USERNAME and SEED_DEMO_PASSWORD are required when RUN_SEED is enabled")
	}
	return nil
}
