// ghostbrawl is a top-down arcade brawler: the hero punches and lasers
// waves of ghosts, in the terminal or in a desktop window.
//
// Usage:
//
//	ghostbrawl play            - Play in the terminal
//	ghostbrawl window          - Play in a desktop window
//	ghostbrawl scores          - Show high scores
//	ghostbrawl config dump     - Print the effective tuning
//	ghostbrawl config check    - Validate a tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ghostbrawl/scores.db)
//	--config <path>       - Tuning file (YAML or TOML)
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostbrawl",
	Short: "Ghost Brawl - punch ghosts in your terminal or a window",
	Long: `Ghost Brawl is a top-down arcade brawler. Fly around the arena,
fire lasers and super punches, and clear wave after wave of ghosts.
Every third wave brings a boss.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View high scores
  config   - Inspect and validate tuning files

Examples:
  ghostbrawl play
  ghostbrawl window --difficulty hard
  ghostbrawl play --seed 42 --config ./my-tuning.toml
  ghostbrawl scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ghostbrawl/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: stderr, or ~/.ghostbrawl/ghostbrawl.log in the terminal)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. When path is empty it writes to
// fallback. The returned func releases the log file, if any.
func newLogger(path string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, done := fallback, func() {}
	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, done = f, func() { f.Close() } //nolint:errcheck
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "ghostbrawl",
		Level:           level,
	})
	return logger, done, nil
}

// loadTuning loads the tuning file chosen by --config (or the search path)
// and applies --difficulty on top.
func loadTuning() (config.Tuning, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Tuning{}, err
	}
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return config.Tuning{}, err
	}
	config.ApplyPreset(&tuning, preset)
	return tuning, nil
}

// runtimeConfig returns the playfield settings from the global flags.
// A zero seed is replaced with the current time.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
