package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds payroll generation settings
type PayrollConfig struct {
	// OvertimeDefaultRate is the premium percentage applied when a
	// generation request carries overtime hours but no explicit rate.
	OvertimeDefaultRate decimal.Decimal

	// EnforcePeriodUniqueness rejects a second payslip for the same
	// employee and period.
	EnforcePeriodUniqueness bool

	// ArtifactsDir is where rendered payslip documents are written.
	ArtifactsDir string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gestia-paie"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	overtimeRate, err := decimal.NewFromString(getEnv("PAYROLL_OVERTIME_DEFAULT_RATE", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_OVERTIME_DEFAULT_RATE: %w", err)
	}
	enforceUniqueness, err := strconv.ParseBool(getEnv("PAYROLL_ENFORCE_PERIOD_UNIQUENESS", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_ENFORCE_PERIOD_UNIQUENESS: %w", err)
	}

	config.Payroll = PayrollConfig{
		OvertimeDefaultRate:     overtimeRate,
		EnforcePeriodUniqueness: enforceUniqueness,
		ArtifactsDir:            getEnv("PAYROLL_ARTIFACTS_DIR", "storage/payslips"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.OvertimeDefaultRate.IsNegative() {
		return fmt.Errorf("PAYROLL_OVERTIME_DEFAULT_RATE must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
