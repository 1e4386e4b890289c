package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa-catch/internal/config"
	"github.com/vovakirdan/santa-catch/internal/core"
	"github.com/vovakirdan/santa-catch/internal/games/santa"
	"github.com/vovakirdan/santa-catch/internal/storage"
)

// suddenDeathConfig ends a round on the first gift: one life and a catch
// line below the floor, so nothing is ever caught.
func suddenDeathConfig() config.SantaConfig {
	cfg := config.DefaultSantaConfig()
	cfg.Gameplay.Lives = 1
	cfg.Spawn.ChancePercent = 100
	cfg.Catcher.CatchOffset = -100
	return cfg
}

var _ Game = (*santa.Game)(nil)

type testHost struct {
	game  *santa.Game
	model Model
	start time.Time
	frame int
}

func newTestHost(t *testing.T, cfg config.SantaConfig, history *storage.Store) *testHost {
	t.Helper()
	start := time.Unix(1_700_000_000, 0)
	game := santa.New(cfg, nil)
	m := NewModel(game, Options{History: history, Started: start},
		core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return &testHost{game: game, model: m, start: start}
}

func (h *testHost) tick() {
	h.frame++
	next, _ := h.model.Update(TickMsg(h.start.Add(time.Duration(h.frame) * 16 * time.Millisecond)))
	h.model = next.(Model)
}

func (h *testHost) key(msg tea.KeyMsg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *testHost) tickUntilOver(t *testing.T) {
	t.Helper()
	for i := 0; i < 5000 && !h.model.GameState().GameOver; i++ {
		h.tick()
	}
	require.True(t, h.model.GameState().GameOver, "round never ended")
}

func openHistory(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelRecordsFinishedRoundOnce(t *testing.T) {
	history := openHistory(t)
	h := newTestHost(t, suddenDeathConfig(), history)

	h.tickUntilOver(t)
	for i := 0; i < 30; i++ {
		h.tick()
	}

	rounds, err := history.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	r := rounds[0]
	assert.Equal(t, h.game.Round().ID().String(), r.RoundID)
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, 0, r.LivesLeft)
	assert.Equal(t, storage.OutcomeGameOver, r.Outcome)
	assert.InDelta(t, 1.0, r.MaxSpeed, 1e-9)
	assert.Positive(t, r.Duration)
}

func TestModelRestartRecordsEachRound(t *testing.T) {
	history := openHistory(t)
	h := newTestHost(t, suddenDeathConfig(), history)

	h.tickUntilOver(t)
	first := h.game.Round().ID()

	h.key(tea.KeyMsg{Type: tea.KeySpace})
	h.tick()
	require.False(t, h.model.GameState().GameOver)
	assert.NotEqual(t, first, h.game.Round().ID())

	h.tickUntilOver(t)

	rounds, err := history.RecentRounds(10)
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
}

func TestModelWithoutHistory(t *testing.T) {
	h := newTestHost(t, suddenDeathConfig(), nil)
	h.tickUntilOver(t)
	assert.Equal(t, 1, h.model.GameState().Score)
}

func TestModelLaneKeys(t *testing.T) {
	cfg := config.DefaultSantaConfig()
	cfg.Spawn.ChancePercent = 0
	h := newTestHost(t, cfg, nil)

	h.key(runeKey('3'))
	h.tick()
	assert.Equal(t, 2, h.game.Round().CatcherLane())

	h.key(runeKey('1'))
	h.tick()
	assert.Equal(t, 0, h.game.Round().CatcherLane())
}

func TestModelBackAndQuit(t *testing.T) {
	h := newTestHost(t, config.DefaultSantaConfig(), nil)
	cmd := h.key(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.True(t, h.model.BackToMenu())
	assert.Empty(t, h.model.View())

	h = newTestHost(t, config.DefaultSantaConfig(), nil)
	cmd = h.key(runeKey('q'))
	require.NotNil(t, cmd)
	assert.False(t, h.model.BackToMenu())
	assert.Empty(t, h.model.View())
}

func TestModelView(t *testing.T) {
	h := newTestHost(t, config.DefaultSantaConfig(), nil)
	h.tick()

	view := h.model.View()
	assert.Contains(t, view, "Score: 1")
	assert.Contains(t, view, "[4]")
}

func TestModelResizeKeepsRound(t *testing.T) {
	h := newTestHost(t, config.DefaultSantaConfig(), nil)
	id := h.game.Round().ID()

	next, _ := h.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.model = next.(Model)

	assert.Equal(t, id, h.game.Round().ID())
	assert.Equal(t, 120, h.model.screen.Width())
}

// stubGame finishes its round as a victory on the first step.
type stubGame struct {
	lanes int
	steps int
	lane  int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextCentered(0, "stub") }
func (g *stubGame) Lanes() int { return g.lanes }
func (g *stubGame) State() core.GameState { return core.GameState{Score: 555, GameOver: g.steps > 0} }
func (g *stubGame) Summary() core.RoundSummary {
	return core.RoundSummary{ID: "round-1", Score: 555, LivesLeft: 2, Victory: true, MaxSpeed: 12.2, Elapsed: time.Minute}
}

func (g *stubGame) Step(in core.InputFrame, _ time.Duration) core.StepResult {
	g.steps++
	if in.Has(core.ActionSelectLane) {
		g.lane = in.Lane
	}
	return core.StepResult{State: g.State()}
}

func TestModelDrivesGameThroughInterface(t *testing.T) {
	history := openHistory(t)
	game := &stubGame{lanes: 6}
	m := NewModel(game, Options{History: history, Started: time.Unix(0, 0)},
		core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey('6'))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Unix(1, 0)))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Unix(2, 0)))
	m = next.(Model)

	assert.Equal(t, 5, game.lane, "sixth digit key selects the last lane")
	assert.Contains(t, m.View(), "stub")

	rounds, err := history.RecentRounds(10)
	require.NoError(t, err)
	require.Len(t, rounds, 1, "a finished round is saved once")
	assert.Equal(t, "round-1", rounds[0].RoundID)
	assert.Equal(t, storage.OutcomeVictory, rounds[0].Outcome)
	assert.Equal(t, 2, rounds[0].LivesLeft)
	assert.Equal(t, time.Minute, rounds[0].Duration)
}
