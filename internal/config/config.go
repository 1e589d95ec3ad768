package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/rneatherway/fhir-server/internal/platform/search"
)

// Config holds process-level settings for the query compilation core. The
// hosting server loads it once at startup and passes the values explicitly
// into the search package; the core itself never reads configuration or
// any other global state.
type Config struct {
	FHIRVersion string `mapstructure:"FHIR_VERSION"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("FHIR_VERSION", string(search.VersionR4))
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("FHIR_VERSION")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if !search.IsValidFHIRVersion(search.FHIRVersion(cfg.FHIRVersion)) {
		return nil, fmt.Errorf("FHIR_VERSION must be one of: %s, %s; got %q",
			search.VersionSTU3, search.VersionR4, cfg.FHIRVersion)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	return cfg, nil
}

// Version returns the configured FHIR version as a typed value.
func (c *Config) Version() search.FHIRVersion {
	return search.FHIRVersion(c.FHIRVersion)
}

// LoggerLevel returns the configured zerolog level. Load has already
// validated the value.
func (c *Config) LoggerLevel() zerolog.Level {
	lvl, _ := zerolog.ParseLevel(c.LogLevel)
	return lvl
}
