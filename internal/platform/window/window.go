// Package window is the desktop frontend. It runs the game inside an ebiten
// window with vector graphics, mouse aiming and sound.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
	"github.com/vovakirdan/ghostbrawl/internal/game"
	"github.com/vovakirdan/ghostbrawl/internal/storage"
)

// Options are the optional collaborators of the window frontend.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Updates <-chan config.Tuning // Reloaded tuning, applied at the next restart
	Scale   float64              // Window size relative to the playfield
}

// Window adapts a Game to ebiten.Game.
type Window struct {
	game   *game.Game
	config core.RuntimeConfig
	store  *storage.Store
	log    *log.Logger
	update <-chan config.Tuning
	frame  core.InputFrame
	pixel  *ebiten.Image
	face   *text.GoTextFaceSource
}

// New resets g for cfg and wraps it. cfg.Seed must already be chosen.
func New(g *game.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	face, err := fallbackFace()
	if err != nil {
		return nil, err
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(toColor(core.RGB(255, 255, 255)))

	g.Reset(cfg)
	return &Window{
		game:   g,
		config: cfg,
		store:  opts.Store,
		log:    logger,
		update: opts.Updates,
		frame:  core.NewInputFrame(),
		pixel:  pixel,
		face:   face,
	}, nil
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	select {
	case t, ok := <-w.update:
		if ok {
			w.game.ApplyTuning(t)
			w.log.Info("tuning reloaded, applies on next start")
		}
	default:
	}

	w.frame.Clear()
	pollInput(&w.frame)
	if w.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if result := w.game.Step(w.frame); result.Ended {
		w.saveScore(result.State)
	}
	return nil
}

// Draw renders the current state.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(NewCanvas(screen, w.pixel, w.face))
}

// Layout pins the logical screen to the playfield; ebiten scales it to the
// window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.config.Width), int(w.config.Height)
}

// saveScore records the finished run. Failures are logged and play goes on.
func (w *Window) saveScore(state core.GameState) {
	if w.store == nil || state.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:   w.game.ID(),
		Score:    state.Score,
		Level:    w.game.BestLevel(),
		Banished: w.game.Banished(),
		Seed:     w.config.Seed,
	}
	if _, err := w.store.SaveScore(run); err != nil {
		w.log.Error("save score", "err", err)
		return
	}
	w.log.Info("score saved", "score", run.Score, "level", run.Level)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(g, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowSize(int(cfg.Width*scale), int(cfg.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(1, cfg.TickRate))

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
