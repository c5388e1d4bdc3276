package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Metrics.GrossYield = 0.065
	cfg.Metrics.Appreciation = 0.156
	cfg.Metrics.MaintenanceCost = 20.0
	cfg.Analysis.TopN = 10
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.InDelta(t, 0.065, cfg.Metrics.GrossYield, 1e-9)
	assert.InDelta(t, 0.156, cfg.Metrics.Appreciation, 1e-9)
	assert.InDelta(t, 20.0, cfg.Metrics.MaintenanceCost, 1e-9)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.False(t, cfg.Analysis.DropUndefined)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",;" }, true},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, true},
		{"gross yield above 1", func(c *Config) { c.Metrics.GrossYield = 1.5 }, true},
		{"negative appreciation", func(c *Config) { c.Metrics.Appreciation = -0.1 }, true},
		{"negative maintenance", func(c *Config) { c.Metrics.MaintenanceCost = -1 }, true},
		{"zero top n", func(c *Config) { c.Analysis.TopN = 0 }, true},
		{"json format accepted", func(c *Config) { c.Log.Format = "json" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	require.NotNil(t, logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigInvalidLevel(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "loud"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
