package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/marcus/kanafont/internal/prefs"
	"github.com/marcus/kanafont/internal/sound"
	"github.com/marcus/kanafont/pkg/ui/app"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the font picker",
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the picker needs an interactive terminal; use 'kanafont font set' instead")
	}

	opened, err := openStore(cfg.Backend, dataDir)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer opened.Close()

	var player sound.Player = sound.Nop{}
	if !cfg.Mute {
		player = sound.NewBell(os.Stdout)
	}

	model := app.New(opened.Store, player)
	defer model.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(gctx),
	)

	if opened.WatchPath != "" {
		g.Go(func() error {
			return prefs.Watch(gctx, opened.WatchPath, opened.Store)
		})
	}

	g.Go(func() error {
		// Program exit stops the watcher
		defer cancel()
		_, err := program.Run()
		return err
	})

	slog.Info("picker started", "backend", cfg.Backend, "font", opened.Store.Font())
	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	slog.Info("picker stopped", "font", opened.Store.Font())
	return nil
}
