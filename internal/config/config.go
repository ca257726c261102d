package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/lifementor/backend/internal/models"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Budget  BudgetConfig  `mapstructure:"budget"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig holds the embedded record store configuration
type StorageConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// BudgetConfig holds the spending thresholds in currency units.
// The insight engine reads these but never mutates them.
type BudgetConfig struct {
	Daily   float64 `mapstructure:"daily"`
	Weekly  float64 `mapstructure:"weekly"`
	Monthly float64 `mapstructure:"monthly"`
}

// Limits converts the configured thresholds to decimal budget limits
func (b BudgetConfig) Limits() models.BudgetLimits {
	return models.BudgetLimits{
		Daily:   decimal.NewFromFloat(b.Daily),
		Weekly:  decimal.NewFromFloat(b.Weekly),
		Monthly: decimal.NewFromFloat(b.Monthly),
	}
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.in_memory", false)
	v.SetDefault("budget.daily", 50.0)
	v.SetDefault("budget.weekly", 300.0)
	v.SetDefault("budget.monthly", 1000.0)

	// Read from environment variables
	v.SetEnvPrefix("LIFEMENTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to common non-prefixed variables
	v.BindEnv("server.port", "PORT")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are usable.
// Budget limits must be positive; a non-positive limit would make the
// overspending cascade fire on every record, so refuse to start.
func (c *Config) Validate() error {
	if c.Budget.Daily <= 0 {
		return fmt.Errorf("budget.daily must be positive, got %v", c.Budget.Daily)
	}
	if c.Budget.Weekly <= 0 {
		return fmt.Errorf("budget.weekly must be positive, got %v", c.Budget.Weekly)
	}
	if c.Budget.Monthly <= 0 {
		return fmt.Errorf("budget.monthly must be positive, got %v", c.Budget.Monthly)
	}
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	return nil
}
