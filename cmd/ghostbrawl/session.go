package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostbrawl/internal/config"
	"github.com/vovakirdan/ghostbrawl/internal/storage"
)

// session holds what both frontends need besides the game itself.
type session struct {
	log     *log.Logger
	tuning  config.Tuning
	store   *storage.Store
	watcher *config.Watcher
	updates chan config.Tuning
	done    chan struct{}
}

// openSession loads tuning, opens the score store and starts watching the
// tuning file. Store and watcher failures only disable those features.
func openSession(logger *log.Logger) (*session, error) {
	tuning, err := loadTuning()
	if err != nil {
		return nil, err
	}

	s := &session{log: logger, tuning: tuning, done: make(chan struct{})}

	if s.store, err = storage.Open(flagDBPath); err != nil {
		logger.Warn("scores disabled", "err", err)
		s.store = nil
	}

	if path := config.Locate(flagConfig); path != "" {
		if s.watcher, err = config.Watch(path); err != nil {
			logger.Warn("tuning reload disabled", "err", err)
			s.watcher = nil
		} else {
			s.updates = make(chan config.Tuning, 1)
			go s.forward()
			logger.Info("watching tuning", "path", s.watcher.Path())
		}
	}
	return s, nil
}

// forward re-applies the difficulty preset to reloaded tuning and keeps
// only the newest value for the frontend.
func (s *session) forward() {
	preset, _ := config.ParsePreset(flagDifficulty) // validated by loadTuning
	for {
		select {
		case t, ok := <-s.watcher.Updates():
			if !ok {
				return
			}
			config.ApplyPreset(&t, preset)
			select {
			case <-s.updates:
			default:
			}
			s.updates <- t
		case err, ok := <-s.watcher.Errors():
			if !ok {
				return
			}
			s.log.Warn("tuning reload failed", "err", err)
		case <-s.done:
			return
		}
	}
}

// Updates returns the reloaded tuning channel, nil without a watcher.
func (s *session) Updates() <-chan config.Tuning {
	return s.updates
}

func (s *session) Close() {
	close(s.done)
	if s.watcher != nil {
		s.watcher.Close() //nolint:errcheck
	}
	if s.store != nil {
		s.store.Close() //nolint:errcheck
	}
}
