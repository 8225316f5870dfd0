package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".backlogr"))
		}

		// Check /etc
		v.AddConfigPath("/etc/backlogr/")
	}

	// Read config file. A missing file is fine: everything has a default
	// or can come from flags, the token can be prompted.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Plex defaults
	v.SetDefault("plex.url", "http://localhost:32400")

	// Thresholds default to unset
	v.SetDefault("thresholds.lower", -1)
	v.SetDefault("thresholds.upper", -1)
	v.SetDefault("thresholds.yellow", -1)
	v.SetDefault("thresholds.red", -1)

	// Output defaults
	v.SetDefault("output.color", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid. It runs before any
// client is constructed so bad thresholds never cost a network call.
func Validate(cfg *Config) error {
	if cfg.Plex.URL == "" {
		return fmt.Errorf("plex.url is required")
	}

	if err := validateThresholds(cfg.Thresholds); err != nil {
		return err
	}

	if cfg.Sonarr.Enabled {
		if cfg.Sonarr.URL == "" {
			return fmt.Errorf("sonarr.url is required when sonarr is enabled")
		}
		if cfg.Sonarr.APIKey == "" {
			return fmt.Errorf("sonarr.api_key is required when sonarr is enabled")
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

func validateThresholds(t ThresholdsConfig) error {
	lower, upper := t.Lower >= 0, t.Upper >= 0

	if lower && upper && t.Upper <= t.Lower {
		return fmt.Errorf("thresholds.upper (%d) must be greater than thresholds.lower (%d)", t.Upper, t.Lower)
	}

	for _, limit := range []struct {
		name  string
		value int
	}{
		{"thresholds.yellow", t.Yellow},
		{"thresholds.red", t.Red},
	} {
		if limit.value < 0 {
			continue
		}
		if lower && limit.value < t.Lower {
			return fmt.Errorf("%s (%d) must not be below thresholds.lower (%d)", limit.name, limit.value, t.Lower)
		}
		if upper && limit.value > t.Upper {
			return fmt.Errorf("%s (%d) must not be above thresholds.upper (%d)", limit.name, limit.value, t.Upper)
		}
	}

	if t.Yellow >= 0 && t.Red >= 0 && t.Yellow >= t.Red {
		return fmt.Errorf("thresholds.yellow (%d) must be below thresholds.red (%d)", t.Yellow, t.Red)
	}

	return nil
}
