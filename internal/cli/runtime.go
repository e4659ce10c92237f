package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/apex/internal/config"
	"github.com/rileyhilliard/apex/internal/logger"
	"github.com/spf13/cobra"
)

// runtimeEnv is what a feed-running command needs after flag parsing.
type runtimeEnv struct {
	cfg     *config.Config
	cfgPath string
	log     logger.Logger
	close   func() error
}

// setupRuntime loads config, applies global flags and opens the log file.
// Callers must call close when done.
func setupRuntime(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, path, err := config.LoadOrDefault(config.ExpandTilde(cfgFile))
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.RandomSeed = seedFlag
	}
	if noColor {
		cfg.Output.Color = config.ColorNever
	}
	applyColorMode(cfg.Output.Color)

	env := &runtimeEnv{cfg: cfg, cfgPath: path, log: logger.Noop(), close: func() error { return nil }}

	logPath := logFile
	if logPath == "" {
		logPath = cfg.Log.File
	}
	if logPath == "" {
		logPath = logger.DefaultLogPath()
	}

	log, closeLog, err := logger.NewFileLogger(logger.FileOptions{
		Path:  config.ExpandTilde(logPath),
		Debug: debugFlag || cfg.Log.Level == config.LogLevelDebug,
	})
	if err != nil {
		// Logging is optional; the dashboard still runs.
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	} else {
		env.log = log
		env.close = closeLog
	}
	logger.SetDefault(env.log)

	if path != "" {
		env.log.Info("loaded config from %s", path)
	} else {
		env.log.Info("no config file found, using defaults")
	}
	return env, nil
}

// applyColorMode pins the lipgloss color profile. "auto" leaves terminal
// detection alone.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
