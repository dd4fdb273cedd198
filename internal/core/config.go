package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Width    float64 // Playfield width in pixels
	Height   float64 // Playfield height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the playfield rectangle.
func (c RuntimeConfig) Bounds() Rect {
	return Rect{W: c.Width, H: c.Height}
}

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase
	Score     int
	Level     int
	Health    float64
	MaxHealth float64
	Enemies   int
	GameOver  bool // Whether the session has ended
	Paused    bool // Whether the session is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is set on the tick that entered PhaseGameOver.
	Ended bool
}
