package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/kanafont/internal/config"
)

var (
	version string
	dataDir string
	backend = backendFlag(config.BackendJSON)
	mute    bool
	debug   bool

	cfg *config.Config
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "kanafont",
	Short: "Pick the display font for kana practice",
	Long: `kanafont - choose the font used to display kana.

Run without arguments to open the font picker. The choice is stored in the
shared preferences and picked up by every open kanafont screen.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runPick,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data-dir", "", "directory for config, preferences and logs (default $XDG_CONFIG_HOME/kanafont)")
	flags.Var(&backend, "backend", "preferences backend: json, sqlite or memory")
	flags.BoolVar(&mute, "mute", false, "disable the click sound")
	flags.BoolVar(&debug, "debug", false, "log at debug level")
}

// setup resolves the data directory, loads config and applies flag
// overrides, then starts logging.
func setup(cmd *cobra.Command, args []string) error {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return err
	}
	dataDir = dir

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	loaded, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyFlags(cmd, loaded)

	return startLogging(dataDir, debug)
}

func teardown(cmd *cobra.Command, args []string) error {
	return stopLogging()
}

func resolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	dir, err := config.DataDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine data dir: %w", err)
	}
	return dir, nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, c *config.Config) *config.Config {
	out := *c
	flags := cmd.Flags()
	if flags.Changed("backend") {
		out.Backend = backend.String()
	}
	if flags.Changed("mute") {
		out.Mute = mute
	}
	out.Backend = out.BackendOrDefault()
	return &out
}
