package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostbrawl/internal/game"
	"github.com/vovakirdan/ghostbrawl/internal/platform/window"
)

var (
	flagAssets string
	flagScale  float64
	flagMute   bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window with sound.

Controls:
  WASD/Arrows  - Move
  Mouse        - Aim
  Space        - Fire laser
  E            - Super punch
  F/Left click - Punch
  Right click  - Super punch
  Enter        - Start / restart
  P/Esc        - Pause and resume
  Q            - Quit

The assets directory may contain images/<name>.png (superman, ghost,
background, effects), fonts/<name>.ttf (hud) and sounds/<cue>.wav or .ogg
(laser, punch, ghost_death, hurt, level_up, music). Missing files fall back
to vector shapes, the built-in font and synthesized sounds.

Examples:
  ghostbrawl window
  ghostbrawl window --assets ./assets --scale 1.5
  ghostbrawl window --mute --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Assets directory")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the 800x600 arena")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, os.Stderr)
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
		game.WithAudio(window.NewAudio(flagAssets, flagMute, logger)),
		game.WithAssets(window.LoadAssets(flagAssets, logger)),
	)
	cfg := runtimeConfig()
	logger.Info("starting window session", "seed", cfg.Seed, "fps", cfg.TickRate)

	return window.Run(g, cfg, window.Options{
		Store:   s.store,
		Logger:  logger,
		Updates: s.Updates(),
		Scale:   flagScale,
	})
}
