package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileHeader is written above the generated config.
const fileHeader = `apex dashboard configuration.
Durations use Go syntax (500ms, 2s). random_seed 0 picks a new seed each run.`

// fileTiming mirrors TimingConfig with human-readable durations.
type fileTiming struct {
	ConnectDelay   string `yaml:"connect_delay"`
	FirstTick      string `yaml:"first_tick"`
	ReconnectDelay string `yaml:"reconnect_delay"`
	LagRetry       string `yaml:"lag_retry"`
	BurstDelay     string `yaml:"burst_delay"`
	MinDelay       string `yaml:"min_delay"`
	MaxDelay       string `yaml:"max_delay"`
}

type fileConfig struct {
	Version    int          `yaml:"version"`
	Seed       SeedConfig   `yaml:"seed"`
	Timing     fileTiming   `yaml:"timing"`
	Odds       OddsConfig   `yaml:"odds"`
	RandomSeed int64        `yaml:"random_seed"`
	Output     OutputConfig `yaml:"output"`
	Log        LogConfig    `yaml:"log"`
}

// Marshal renders cfg as YAML that Load reads back to the same values.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version: cfg.Version,
		Seed:    cfg.Seed,
		Timing: fileTiming{
			ConnectDelay:   cfg.Timing.ConnectDelay.String(),
			FirstTick:      cfg.Timing.FirstTick.String(),
			ReconnectDelay: cfg.Timing.ReconnectDelay.String(),
			LagRetry:       cfg.Timing.LagRetry.String(),
			BurstDelay:     cfg.Timing.BurstDelay.String(),
			MinDelay:       cfg.Timing.MinDelay.String(),
			MaxDelay:       cfg.Timing.MaxDelay.String(),
		},
		Odds:       cfg.Odds,
		RandomSeed: cfg.RandomSeed,
		Output:     cfg.Output,
		Log:        cfg.Log,
	}

	var doc yaml.Node
	if err := doc.Encode(fc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	doc.HeadComment = fileHeader

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Write saves cfg to path, creating parent directories.
// It refuses to replace an existing file unless overwrite is set.
func Write(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
