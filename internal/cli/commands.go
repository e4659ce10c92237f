package cli

import (
	"os"

	"github.com/rileyhilliard/apex/internal/dashboard"
	"github.com/rileyhilliard/apex/internal/errors"
	"github.com/rileyhilliard/apex/internal/mount"
	"github.com/rileyhilliard/apex/internal/stream"
	"github.com/spf13/cobra"
)

var streamFlags StreamFlags

// watchCmd is the explicit name for the default dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the full-screen live dashboard",
	Long: `Show the Project Apex dashboard full screen. This is what plain 'apex' does.

Keys:
  q, Ctrl+C   quit
  ?           toggle help`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(cmd)
	},
}

// streamCmd prints feed updates as lines
var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Print feed updates as JSON or text lines",
	Long: `Run the simulated feed without a terminal UI and print one line per update.

Examples:
  apex stream
  apex stream --format text
  apex stream --count 20 | jq .snapshot.total_leads`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return streamCommand(cmd, streamFlags)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for apex.

Examples:
  # Bash
  apex completion bash > /etc/bash_completion.d/apex

  # Zsh
  apex completion zsh > "${fpath[1]}/_apex"

  # Fish
  apex completion fish > ~/.config/fish/completions/apex.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func watchCommand(cmd *cobra.Command) error {
	env, err := setupRuntime(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	// A nil surface makes Mount fail with a pointer to 'apex stream'.
	var surface mount.Surface
	if out := mount.Terminal(os.Stdout); out != nil {
		surface = dashboard.NewSurface(dashboard.SurfaceOptions{
			Input:     os.Stdin,
			Output:    out,
			Seed:      mount.Seed(env.cfg),
			AltScreen: true,
		})
	} else {
		env.log.Warn("stdout is not a terminal")
	}

	app := mount.New(mount.Options{Config: env.cfg, Logger: env.log})
	return app.Mount(cmd.Context(), surface)
}

func streamCommand(cmd *cobra.Command, flags StreamFlags) error {
	opts, err := ParseStreamFlags(flags)
	if err != nil {
		return err
	}

	env, err := setupRuntime(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	opts.Out = cmd.OutOrStdout()
	surface := stream.New(opts)
	app := mount.New(mount.Options{Config: env.cfg, Logger: env.log})
	return app.Mount(cmd.Context(), surface)
}

func init() {
	AddStreamFlags(streamCmd, &streamFlags)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
