package config

// Config represents the complete configuration structure
type Config struct {
	Plex       PlexConfig       `mapstructure:"plex"`
	Sonarr     SonarrConfig     `mapstructure:"sonarr"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// PlexConfig holds Plex server connection details
type PlexConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

// SonarrConfig holds optional Sonarr connection details for the
// monitored-status column
type SonarrConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	APIKey  string `mapstructure:"api_key"`
}

// ThresholdsConfig contains the backlog bounds and color limits.
// A negative value means the threshold is not set.
type ThresholdsConfig struct {
	Lower  int `mapstructure:"lower"`
	Upper  int `mapstructure:"upper"`
	Yellow int `mapstructure:"yellow"`
	Red    int `mapstructure:"red"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Color  bool   `mapstructure:"color"`
	Filter string `mapstructure:"filter"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
