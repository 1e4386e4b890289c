package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/santa-catch/internal/core"
	"github.com/vovakirdan/santa-catch/internal/storage"
)

// Game is a core.Game played on numbered lanes whose rounds are kept
// in the round history.
type Game interface {
	core.Game

	// Lanes returns the lane count; lanes map to the digit keys.
	Lanes() int

	// Summary reports the current round.
	Summary() core.RoundSummary
}

// Options carries the dependencies of the game screen.
type Options struct {
	History *storage.Store // Round history, nil when unavailable
	Logger  *log.Logger
	Started time.Time // Origin of the monotonic game clock
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       Game
	screen     *core.Screen
	history    *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	backToMenu bool
	savedRound string // Last round written to history
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Started.IsZero() {
		opts.Started = time.Now()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    opts.History,
		logger:     opts.Logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(game.Lanes()),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		started:    opts.Started,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("round started", "game", m.game.ID(), "round", m.game.Summary().ID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is scaled on every render, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	now := at.Sub(m.started)

	result := m.game.Step(m.inputFrame, now)
	m.gameState = result.State

	if result.Restarted {
		m.logger.Info("round started", "game", m.game.ID(), "round", m.game.Summary().ID)
	}

	if m.gameState.GameOver {
		m.recordRound()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRound writes the finished round to history once.
func (m *Model) recordRound() {
	sum := m.game.Summary()
	if m.savedRound == sum.ID {
		return
	}
	m.savedRound = sum.ID

	outcome := storage.OutcomeGameOver
	if sum.Victory {
		outcome = storage.OutcomeVictory
	}

	m.logger.Info("round finished",
		"round", sum.ID,
		"score", sum.Score,
		"outcome", outcome,
		"best", sum.Best,
		"duration", sum.Elapsed.Round(time.Millisecond),
	)

	if m.history == nil {
		return
	}

	record := storage.RoundRecord{
		RoundID:   sum.ID,
		Score:     sum.Score,
		LivesLeft: sum.LivesLeft,
		Outcome:   outcome,
		MaxSpeed:  sum.MaxSpeed,
		Duration:  sum.Elapsed,
	}
	if _, err := m.history.SaveRound(record); err != nil {
		m.logger.Warn("could not save round history", "round", record.RoundID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".santa", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the state after the last simulated frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game until the player quits or goes back.
// Returns true when the player asked for the menu.
func Run(game Game, opts Options, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run game: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
