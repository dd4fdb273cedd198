package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
	"github.com/vovakirdan/ghostbrawl/internal/game"
	"github.com/vovakirdan/ghostbrawl/internal/storage"
)

// aimReach is how far ahead of the hero keyboard shots are aimed.
const aimReach = 200

// Options are the optional collaborators of the terminal frontend.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Updates <-chan config.Tuning // Reloaded tuning, applied at the next restart
}

// Model is the Bubble Tea model running a Ghost Brawl session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	canvas     *Canvas
	keys       *KeyMapper
	store      *storage.Store
	log        *log.Logger
	updates    <-chan config.Tuning
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	aim        core.Vec2 // Last movement direction, used without a mouse
	mouse      *core.Vec2
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	screen := core.NewScreen(80, 24)
	return Model{
		game:       g,
		screen:     screen,
		canvas:     NewCanvas(screen, cfg.Width, cfg.Height),
		keys:       NewKeyMapper(0),
		store:      opts.Store,
		log:        logger,
		updates:    opts.Updates,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		aim:        core.V(1, 0),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Key releases never arrive while the terminal is unfocused
		m.keys.Release()
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.canvas.Fit(m.config.Width, m.config.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target := m.canvas.ToWorld(msg.X, msg.Y)
	m.mouse = &target
	if action, ok := MapMouse(msg); ok {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	select {
	case t, ok := <-m.updates:
		if ok {
			m.game.ApplyTuning(t)
			m.log.Info("tuning reloaded, applies on next start")
		}
	default:
	}

	m.keys.Tick(&m.inputFrame)
	if axis := m.inputFrame.Axis(); axis != (core.Vec2{}) {
		m.aim = axis.Normalize()
	}
	m.inputFrame.Target = m.target()

	result := m.game.Step(m.inputFrame)
	if m.gameState.Phase == core.PhasePlaying && result.State.Phase != core.PhasePlaying {
		m.keys.Release()
	}
	m.gameState = result.State
	if result.Ended {
		m.saveScore()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) target() core.Vec2 {
	if m.mouse != nil {
		return *m.mouse
	}
	return m.game.Player().Position().Add(m.aim.Scale(aimReach))
}

// saveScore records the finished run. Failures are logged and play goes on.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Level:    m.game.BestLevel(),
		Banished: m.game.Banished(),
		Seed:     m.config.Seed,
	}
	if _, err := m.store.SaveScore(run); err != nil {
		m.log.Error("save score", "err", err)
		return
	}
	m.log.Info("score saved", "score", run.Score, "level", run.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.canvas.Clear()
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".ghostbrawl", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.game.Render(m.canvas)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Track the cursor for aiming
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
