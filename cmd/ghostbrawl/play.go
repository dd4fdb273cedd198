package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghostbrawl/internal/game"
	"github.com/vovakirdan/ghostbrawl/internal/platform/tui"
)

const defaultTerminalLog = "~/.ghostbrawl/ghostbrawl.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  WASD/Arrows  - Move
  Space        - Fire laser toward the aim point
  E            - Super punch
  F            - Punch nearby ghosts
  Mouse        - Aim; left click punches, right click super punches
  Enter        - Start / restart
  P/Esc        - Pause and resume
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Without a mouse, shots aim along the last movement direction.
Logs go to ~/.ghostbrawl/ghostbrawl.log unless --log-file is set.

Examples:
  ghostbrawl play
  ghostbrawl play --difficulty easy
  ghostbrawl play --config ./my-tuning.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; try 'ghostbrawl window'")
	}

	logPath := flagLogFile
	if logPath == "" {
		logPath = defaultTerminalLog
	}
	logger, closeLog, err := newLogger(logPath, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	g := game.New(
		game.WithLogger(logger),
		game.WithTuning(s.tuning),
	)
	cfg := runtimeConfig()
	logger.Info("starting terminal session", "seed", cfg.Seed, "fps", cfg.TickRate)

	return tui.Run(g, cfg, tui.Options{
		Store:   s.store,
		Logger:  logger,
		Updates: s.Updates(),
	})
}
