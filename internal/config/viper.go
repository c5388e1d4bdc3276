// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	// Metrics holds the heuristic constants used when deriving the ROI
	// estimate for sale transactions. The defaults are the 2025 Dubai
	// market assumptions the estimate was originally calibrated with.
	Metrics struct {
		GrossYield      float64 `mapstructure:"gross_yield" yaml:"gross_yield"`
		Appreciation    float64 `mapstructure:"appreciation" yaml:"appreciation"`
		MaintenanceCost float64 `mapstructure:"maintenance_cost" yaml:"maintenance_cost"`
	} `mapstructure:"metrics" yaml:"metrics"`

	Analysis struct {
		TopN          int  `mapstructure:"top_n" yaml:"top_n"`
		DropUndefined bool `mapstructure:"drop_undefined" yaml:"drop_undefined"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Schema struct {
		ProfileDir string `mapstructure:"profile_dir" yaml:"profile_dir"`
	} `mapstructure:"schema" yaml:"schema"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.dld-analytics")
	v.AddConfigPath(".dld-analytics")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("DLD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "2006-01-02")
	v.SetDefault("csv.include_headers", true)

	// Metric defaults: average gross yield ~6.5%, capital appreciation
	// ~15.6%, maintenance approximation 20 AED per square meter.
	v.SetDefault("metrics.gross_yield", 0.065)
	v.SetDefault("metrics.appreciation", 0.156)
	v.SetDefault("metrics.maintenance_cost", 20.0)

	// Analysis defaults
	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("analysis.drop_undefined", false)

	// Data defaults
	v.SetDefault("data.directory", "")

	// Schema defaults
	v.SetDefault("schema.profile_dir", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate metric constants
	if config.Metrics.GrossYield < 0 || config.Metrics.GrossYield > 1 {
		return fmt.Errorf("metrics.gross_yield must be between 0.0 and 1.0, got: %f", config.Metrics.GrossYield)
	}
	if config.Metrics.Appreciation < 0 || config.Metrics.Appreciation > 1 {
		return fmt.Errorf("metrics.appreciation must be between 0.0 and 1.0, got: %f", config.Metrics.Appreciation)
	}
	if config.Metrics.MaintenanceCost < 0 {
		return fmt.Errorf("metrics.maintenance_cost must not be negative, got: %f", config.Metrics.MaintenanceCost)
	}

	// Validate analysis settings
	if config.Analysis.TopN < 1 {
		return fmt.Errorf("analysis.top_n must be at least 1, got: %d", config.Analysis.TopN)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
