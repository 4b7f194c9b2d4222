package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string // development, staging, production

	// External data source
	Yahoo YahooConfig

	// Valuation assumptions
	Valuation ValuationConfig

	// Database (optional, run history is disabled when URL is empty)
	Database DatabaseConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// YahooConfig holds Yahoo Finance client configuration
type YahooConfig struct {
	ChartBaseURL   string
	SummaryBaseURL string
	QuotePageURL   string
	RequestTimeout time.Duration
	RequestsPerSec float64
}

// ValuationConfig holds the fixed DCF model assumptions.
// Defaults stay constant so repeated runs are reproducible bit-for-bit;
// overriding them via env changes every verdict in the report.
type ValuationConfig struct {
	GrowthRate         float64 // assumed FCF growth over the projection horizon
	DiscountRate       float64 // WACC proxy
	TerminalGrowthRate float64 // perpetual growth past the horizon
	ProjectionYears    int
	PEThreshold        float64 // trailing P/E above this is flagged High
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Yahoo: YahooConfig{
			ChartBaseURL:   getEnv("YAHOO_CHART_BASE_URL", "https://query1.finance.yahoo.com/v8/finance/chart"),
			SummaryBaseURL: getEnv("YAHOO_SUMMARY_BASE_URL", "https://query1.finance.yahoo.com/v10/finance/quoteSummary"),
			QuotePageURL:   getEnv("YAHOO_QUOTE_PAGE_URL", "https://finance.yahoo.com/quote"),
			RequestTimeout: getEnvAsDuration("YAHOO_REQUEST_TIMEOUT", "10s"),
			RequestsPerSec: getEnvAsFloat("YAHOO_REQUESTS_PER_SEC", 2.0),
		},

		Valuation: ValuationConfig{
			GrowthRate:         getEnvAsFloat("DCF_GROWTH_RATE", 0.05),
			DiscountRate:       getEnvAsFloat("DCF_DISCOUNT_RATE", 0.10),
			TerminalGrowthRate: getEnvAsFloat("DCF_TERMINAL_GROWTH_RATE", 0.02),
			ProjectionYears:    getEnvAsInt("DCF_PROJECTION_YEARS", 5),
			PEThreshold:        getEnvAsFloat("PE_THRESHOLD", 25.0),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	v := c.Valuation
	if v.DiscountRate <= 0 || v.DiscountRate >= 1 {
		return fmt.Errorf("DCF_DISCOUNT_RATE must be between 0 and 1")
	}
	if v.TerminalGrowthRate <= 0 || v.TerminalGrowthRate >= v.DiscountRate {
		return fmt.Errorf("DCF_TERMINAL_GROWTH_RATE must be positive and less than the discount rate")
	}
	if v.GrowthRate < 0 || v.GrowthRate >= 1 {
		return fmt.Errorf("DCF_GROWTH_RATE must be in [0, 1)")
	}
	if v.ProjectionYears <= 0 {
		return fmt.Errorf("DCF_PROJECTION_YEARS must be positive")
	}
	if v.PEThreshold <= 0 {
		return fmt.Errorf("PE_THRESHOLD must be positive")
	}

	if c.Yahoo.RequestTimeout <= 0 {
		return fmt.Errorf("YAHOO_REQUEST_TIMEOUT must be positive")
	}
	if c.Yahoo.RequestsPerSec <= 0 {
		return fmt.Errorf("YAHOO_REQUESTS_PER_SEC must be positive")
	}

	return nil
}

// HistoryEnabled reports whether run history persistence is configured
func (c *Config) HistoryEnabled() bool {
	return c.Database.URL != ""
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
