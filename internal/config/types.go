package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Output color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log levels.
const (
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// Config represents the complete .apex.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Seed is the snapshot shown before the first tick.
	Seed SeedConfig `yaml:"seed" mapstructure:"seed"`

	Timing TimingConfig `yaml:"timing" mapstructure:"timing"`
	Odds   OddsConfig   `yaml:"odds" mapstructure:"odds"`

	// RandomSeed makes a run reproducible. Zero seeds from the clock.
	RandomSeed int64 `yaml:"random_seed" mapstructure:"random_seed"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SeedConfig holds the initial metric values.
type SeedConfig struct {
	GrowthROI      float64 `yaml:"growth_roi" mapstructure:"growth_roi"`
	TotalLeads     int64   `yaml:"total_leads" mapstructure:"total_leads"`
	ConversionLift float64 `yaml:"conversion_lift" mapstructure:"conversion_lift"`
	CPLReduction   float64 `yaml:"cpl_reduction" mapstructure:"cpl_reduction"`
	Confidence     float64 `yaml:"confidence" mapstructure:"confidence"`
}

// TimingConfig controls every delay the simulated feed schedules.
type TimingConfig struct {
	// ConnectDelay is the simulated handshake before the first "connected".
	ConnectDelay time.Duration `yaml:"connect_delay" mapstructure:"connect_delay"`

	// FirstTick is the delay between entering "connected" and the first tick.
	FirstTick time.Duration `yaml:"first_tick" mapstructure:"first_tick"`

	// ReconnectDelay is how long a lag spike keeps the feed "reconnecting".
	ReconnectDelay time.Duration `yaml:"reconnect_delay" mapstructure:"reconnect_delay"`

	// LagRetry is the tick delay scheduled by a lag spike.
	LagRetry time.Duration `yaml:"lag_retry" mapstructure:"lag_retry"`

	// BurstDelay is the short delay used for burst ticks.
	BurstDelay time.Duration `yaml:"burst_delay" mapstructure:"burst_delay"`

	// MinDelay and MaxDelay bound the uniform delay for regular ticks.
	MinDelay time.Duration `yaml:"min_delay" mapstructure:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay" mapstructure:"max_delay"`
}

// OddsConfig holds per-tick probabilities.
type OddsConfig struct {
	LagSpike float64 `yaml:"lag_spike" mapstructure:"lag_spike"`
	Burst    float64 `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// LogConfig controls the log file. The dashboard owns the terminal, so logs
// never go to stdout or stderr.
type LogConfig struct {
	// File is the log file path. Empty uses the user cache directory.
	File string `yaml:"file" mapstructure:"file"`

	// Level is "info" or "debug".
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with the stock dashboard values.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Seed: SeedConfig{
			GrowthROI:      300.2,
			TotalLeads:     50284,
			ConversionLift: 24.8,
			CPLReduction:   42.0,
			Confidence:     99.2,
		},
		Timing: TimingConfig{
			ConnectDelay:   2 * time.Second,
			FirstTick:      500 * time.Millisecond,
			ReconnectDelay: 800 * time.Millisecond,
			LagRetry:       time.Second,
			BurstDelay:     200 * time.Millisecond,
			MinDelay:       500 * time.Millisecond,
			MaxDelay:       2 * time.Second,
		},
		Odds: OddsConfig{
			LagSpike: 0.05,
			Burst:    0.3,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}
