// Package santa implements "Santa and the Gifts": gifts fall down fixed lanes
// and the player moves Santa's sack under them to catch them.
//
// Round holds the simulation. Game adapts it to the platform host contract.
package santa

import (
	"time"

	"github.com/vovakirdan/santa-catch/internal/config"
	"github.com/vovakirdan/santa-catch/internal/core"
)

const (
	gameID    = "santa"
	gameTitle = "Santa and the Gifts"
)

// Game implements core.Game on top of a Round.
type Game struct {
	cfg     config.SantaConfig
	keeper  ScoreKeeper
	runtime core.RuntimeConfig
	round   *Round
	rounds  int64 // Rounds started since the last Reset

	screenW int
	screenH int

	roundStarted bool
	startedAt    time.Duration // Host time of the round's first step
	lastNow      time.Duration
	maxSpeed     float64
}

// New creates a game. keeper may be nil.
func New(cfg config.SantaConfig, keeper ScoreKeeper) *Game {
	return &Game{
		cfg:    cfg,
		keeper: keeper,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset starts a fresh round with the given runtime settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rounds = 0
	g.newRound()
}

// newRound replaces the current round. Each round gets its own seed so that
// restarts do not replay the previous round.
func (g *Game) newRound() {
	g.round = NewRound(g.cfg, g.keeper, g.runtime.Seed+g.rounds)
	g.round.Start()
	g.rounds++
	g.roundStarted = false
	g.startedAt = 0
	g.lastNow = 0
	g.maxSpeed = g.round.FallSpeed()
}

// Step applies host commands and advances the round to now.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	if g.round == nil {
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionRestart) && g.round.IsOver() {
		g.newRound()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if in.Has(core.ActionConfirm) && g.round.MilestonePaused() {
		g.round.ClearMilestonePause()
	}

	if in.Has(core.ActionSelectLane) && !g.round.IsOver() && !g.round.MilestonePaused() {
		g.round.MoveCatcher(in.Lane)
	}

	if !g.roundStarted {
		g.roundStarted = true
		g.startedAt = now
	}
	if !g.round.IsOver() {
		g.lastNow = now
	}

	g.round.Tick(now)

	if s := g.round.FallSpeed(); s > g.maxSpeed {
		g.maxSpeed = s
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Score(),
		Lives:    g.round.Lives(),
		GameOver: g.round.IsOver(),
		Paused:   g.round.MilestonePaused(),
	}
}

// Phase returns the presentation state of the current round.
func (g *Game) Phase() Phase {
	if g.round == nil {
		return PhasePlaying
	}
	return g.round.Phase()
}

// Round returns the current round.
func (g *Game) Round() *Round {
	return g.round
}

// Elapsed returns how long the current round has been played.
// It stops growing once the round is over.
func (g *Game) Elapsed() time.Duration {
	if !g.roundStarted {
		return 0
	}
	return g.lastNow - g.startedAt
}

// MaxSpeed returns the highest fall speed reached in the current round.
func (g *Game) MaxSpeed() float64 {
	return g.maxSpeed
}

// Lanes returns the number of lanes the catcher can move between.
func (g *Game) Lanes() int {
	return g.cfg.Lanes.Count
}

// Summary reports the current round.
func (g *Game) Summary() core.RoundSummary {
	if g.round == nil {
		return core.RoundSummary{}
	}
	r := g.round
	return core.RoundSummary{
		ID:        r.ID().String(),
		Score:     r.Score(),
		LivesLeft: r.Lives(),
		Victory:   r.OverReason() == OverTerminalScore,
		Best:      r.Best(),
		MaxSpeed:  g.maxSpeed,
		Elapsed:   g.Elapsed(),
	}
}
