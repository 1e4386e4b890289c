package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/santa-catch/internal/config"
	"github.com/vovakirdan/santa-catch/internal/core"
	"github.com/vovakirdan/santa-catch/internal/games/santa"
	"github.com/vovakirdan/santa-catch/internal/platform/tui"
	"github.com/vovakirdan/santa-catch/internal/storage"
)

// session holds everything a command needs to host rounds.
type session struct {
	logger  *log.Logger
	logFile *os.File
	cfg     config.SantaConfig
	best    *storage.BestScore
	history *storage.Store // nil when the database could not be opened
	runtime core.RuntimeConfig
	started time.Time
}

// openSession sets up logging, config and storage from the global flags.
func openSession() (*session, error) {
	s := &session{started: time.Now()}

	logger, logFile, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.logFile = logFile

	s.cfg, err = config.LoadSanta(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.best = storage.OpenBestScore(flagRecordPath, logger)

	s.history, err = storage.Open(flagDBPath)
	if err != nil {
		// Continue without history - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open round history: %v\n", err)
		logger.Warn("round history disabled", "path", flagDBPath, "error", err)
		s.history = nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s.runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("session opened",
		"config", flagConfig,
		"record", s.best.Path(),
		"best", s.best.Best(),
		"lanes", s.cfg.Lanes.Count,
	)

	return s, nil
}

// newGame creates a game that reports final scores to the best-score file.
func (s *session) newGame() *santa.Game {
	return santa.New(s.cfg, s.best)
}

// options returns the game screen dependencies.
func (s *session) options() tui.Options {
	return tui.Options{
		History: s.history,
		Logger:  s.logger,
		Started: s.started,
	}
}

// Close releases the history database and the log file.
func (s *session) Close() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.logger.Warn("could not close round history", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// newLogger writes logs to a file, since the terminal belongs to the game.
func newLogger(path string, debug bool) (*log.Logger, *os.File, error) {
	path = storage.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "santa",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, f, nil
}
