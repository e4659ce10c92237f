package config

import (
	"fmt"
	"math"
	"time"

	"github.com/rileyhilliard/apex/internal/errors"
)

// Confidence bounds enforced by the feed. Seeds must start inside them.
const (
	MinConfidence = 98.0
	MaxConfidence = 99.9
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but apex only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade apex or lower the version field.")
	}

	if err := validateSeed(cfg.Seed); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'seed' section in your .apex.yaml.")
	}

	if err := validateTiming(cfg.Timing); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'timing' section in your .apex.yaml.")
	}

	if err := validateOdds(cfg.Odds); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'odds' section in your .apex.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .apex.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'log' section in your .apex.yaml.")
	}

	return nil
}

func validateSeed(seed SeedConfig) error {
	fields := map[string]float64{
		"seed.growth_roi":      seed.GrowthROI,
		"seed.conversion_lift": seed.ConversionLift,
		"seed.cpl_reduction":   seed.CPLReduction,
		"seed.confidence":      seed.Confidence,
	}
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}

	if seed.TotalLeads < 0 {
		return fmt.Errorf("seed.total_leads can't be negative (got %d)", seed.TotalLeads)
	}
	if seed.Confidence < MinConfidence || seed.Confidence > MaxConfidence {
		return fmt.Errorf("seed.confidence must be between %.1f and %.1f (got %.1f)", MinConfidence, MaxConfidence, seed.Confidence)
	}
	return nil
}

func validateTiming(t TimingConfig) error {
	delays := []struct {
		name string
		d    time.Duration
	}{
		{"timing.connect_delay", t.ConnectDelay},
		{"timing.first_tick", t.FirstTick},
		{"timing.reconnect_delay", t.ReconnectDelay},
		{"timing.lag_retry", t.LagRetry},
		{"timing.burst_delay", t.BurstDelay},
		{"timing.min_delay", t.MinDelay},
		{"timing.max_delay", t.MaxDelay},
	}
	for _, d := range delays {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive (got %s)", d.name, d.d)
		}
	}

	if t.MinDelay >= t.MaxDelay {
		return fmt.Errorf("timing.min_delay (%s) must be shorter than timing.max_delay (%s)", t.MinDelay, t.MaxDelay)
	}
	return nil
}

func validateOdds(o OddsConfig) error {
	if o.LagSpike < 0 || o.LagSpike > 1 || math.IsNaN(o.LagSpike) {
		return fmt.Errorf("odds.lag_spike must be between 0 and 1 (got %v)", o.LagSpike)
	}
	if o.Burst < 0 || o.Burst > 1 || math.IsNaN(o.Burst) {
		return fmt.Errorf("odds.burst must be between 0 and 1 (got %v)", o.Burst)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

func validateLog(l LogConfig) error {
	validLevels := map[string]bool{LogLevelInfo: true, LogLevelDebug: true, "": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("log.level '%s' isn't valid - use 'info' or 'debug'", l.Level)
	}
	return nil
}
