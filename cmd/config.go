package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/marcus/kanafont/internal/config"
	"github.com/marcus/kanafont/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the effective settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings after flag overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "data-dir: %s\nbackend:  %s\nmute:     %t\n",
			dataDir, cfg.Backend, cfg.Mute)
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store the current --backend and --mute as defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(dataDir, cfg); err != nil {
			output.Error("save config: %v", err)
			return fmt.Errorf("save config: %w", err)
		}
		slog.Info("config saved", "backend", cfg.Backend, "mute", cfg.Mute)
		fmt.Fprintln(cmd.OutOrStdout(), output.Success("SAVED backend=%s mute=%t", cfg.Backend, cfg.Mute))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
