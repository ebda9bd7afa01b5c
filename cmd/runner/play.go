package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space/Up/W/Click - Jump (also starts and restarts)
  R/Enter          - Restart
  Tab              - Show best runs of this session
  Ctrl+S           - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentler acceleration, sparser obstacles
  normal - Default settings
  hard   - Faster start, steeper acceleration, denser obstacles
  fixed  - No acceleration

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --log-level debug --log-file runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Logs would corrupt the alt screen, so they go to a file or nowhere
	logger, closeLog := newLogger("runner", io.Discard)
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run ledger: %v\n", err)
		// Continue without the board - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game:    cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Player:  playerName(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName is the local user name recorded with runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
