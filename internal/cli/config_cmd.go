package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/apex/internal/config"
	"github.com/rileyhilliard/apex/internal/errors"
	"github.com/rileyhilliard/apex/internal/mount"
	"github.com/spf13/cobra"
)

var (
	configInitForce  bool
	configInitGlobal bool
)

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the apex config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Long: `Write a config file with every setting at its default.

By default the file is .apex.yaml in the current directory. Use --global to
write ~/.config/apex/config.yaml, or --config to choose the path.

Examples:
  apex config init
  apex config init --global
  apex config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInit(cmd, configInitPath(), configInitForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShow(cmd, config.ExpandTilde(cfgFile))
	},
}

// confirmOverwrite asks before replacing an existing file. Swapped in tests.
var confirmOverwrite = func(path string) (bool, error) {
	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s?", path)).
				Description("Your current settings will be replaced with the defaults").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirm, nil
}

// interactive reports whether we can prompt. Swapped in tests.
var interactive = func() bool {
	return mount.Terminal(os.Stdin) != nil && mount.Terminal(os.Stdout) != nil
}

func configInitPath() string {
	switch {
	case cfgFile != "":
		return config.ExpandTilde(cfgFile)
	case configInitGlobal:
		return config.GlobalConfigPath()
	default:
		return config.ConfigFileName
	}
}

func configInit(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Couldn't work out where to write the config",
			"Pass an explicit path with --config")
	}

	overwrite := force
	if _, err := os.Stat(path); err == nil && !force {
		if !interactive() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s already exists", path),
				"Use --force to overwrite it")
		}
		ok, err := confirmOverwrite(path)
		if err != nil || !ok {
			cmd.Println("Cancelled.")
			return nil
		}
		overwrite = true
	}

	if err := config.Write(path, config.DefaultConfig(), overwrite); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cmd.Printf("✓ Wrote %s\n", abs)
	return nil
}

func configShow(cmd *cobra.Command, explicit string) error {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	source := "built-in defaults"
	if path != "" {
		source = path
	}
	cmd.Printf("# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write the global config instead of ./.apex.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
