package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	debugFlag bool
	logFile   string
	noColor   bool
	seedFlag  int64
)

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "apex",
	Short: "Experiment Engine live growth dashboard",
	Long: `apex shows the Project Apex experiment dashboard: growth ROI, leads,
conversion lift and CPL reduction, updated by a simulated live feed.

Run it in a terminal for the full-screen dashboard, or use 'apex stream'
to print updates as lines when no terminal is available.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.apex.yaml, then ~/.config/apex/config.yaml)")
	flags.BoolVar(&debugFlag, "debug", false, "write debug messages to the log file")
	flags.StringVar(&logFile, "log-file", "", "log file path (default: user cache dir)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.Int64Var(&seedFlag, "seed", 0, "random seed for a reproducible feed (0 = clock)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError adds a help hint to cobra's usage errors. Structured errors
// already carry their own suggestion.
func formatError(err error) string {
	if isUnknownCommandError(err) {
		msg := "✗ " + err.Error() + "\n\n  Run 'apex --help' to see available commands"
		if name := extractUnknownCommand(err); name != "" {
			msg += fmt.Sprintf("\n  '%s' is not an apex command", name)
		}
		return msg
	}
	return err.Error()
}

func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls foo out of `unknown command "foo" for "apex"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
