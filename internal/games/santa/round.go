package santa

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/santa-catch/internal/config"
	"github.com/vovakirdan/santa-catch/internal/core"
)

// ScoreKeeper holds the all-time best score.
// Round calls UpdateIfHigher once when it ends; the menu reads Best.
type ScoreKeeper interface {
	Best() int
	UpdateIfHigher(score int) bool
}

// Message is a timed banner, such as an achievement announcement.
type Message struct {
	Text    string
	Expires time.Duration
}

// Round owns all mutable state of one playthrough.
// It is driven by a single goroutine: the host calls Tick once per frame.
type Round struct {
	id     uuid.UUID
	cfg    config.SantaConfig
	keeper ScoreKeeper
	rng    *rand.Rand

	laneWidth   int
	catcherLane int
	gifts       []Gift // In creation order
	activeLanes []bool // activeLanes[i] is true while a gift falls in lane i
	nextGiftID  uint64
	lastSpawn   time.Duration

	score        int
	lives        int
	speed        *config.SpeedProgression
	achievements *Achievements
	message      *Message
	snow         *Snowfall

	active         bool
	over           bool
	overReason     OverReason
	milestonePause bool
	pausePassed    bool // First major milestone already triggered
	terminalPassed bool // Terminal milestone already triggered
	ticks          uint64
}

// NewRound creates a fresh round. It does not simulate until Start is called.
// keeper may be nil when no best score is tracked.
func NewRound(cfg config.SantaConfig, keeper ScoreKeeper, seed int64) *Round {
	rng := rand.New(rand.NewSource(seed))

	return &Round{
		id:           uuid.New(),
		cfg:          cfg,
		keeper:       keeper,
		rng:          rng,
		laneWidth:    cfg.LaneWidth(),
		activeLanes:  make([]bool, cfg.Lanes.Count),
		gifts:        make([]Gift, 0, cfg.Lanes.Count),
		score:        cfg.Gameplay.StartScore,
		lives:        cfg.Gameplay.Lives,
		speed:        config.NewSpeedProgression(cfg.Physics),
		achievements: NewAchievements(cfg.Achievements),
		snow:         NewSnowfall(cfg.Snow, cfg.Field, rng),
	}
}

// Start activates the round so that Tick advances it.
func (r *Round) Start() {
	r.active = true
}

// MoveCatcher puts the catcher in lane. Out-of-range lanes are ignored,
// and so is any move after the round ended.
func (r *Round) MoveCatcher(lane int) {
	if r.over || lane < 0 || lane >= r.cfg.Lanes.Count {
		return
	}
	r.catcherLane = lane
}

// ClearMilestonePause resumes a round paused at the first major milestone.
func (r *Round) ClearMilestonePause() {
	r.milestonePause = false
}

// Tick advances the round to time now, measured on the host's monotonic clock.
// It does nothing while the round is inactive, paused or over.
func (r *Round) Tick(now time.Duration) {
	if r.over || !r.active || r.milestonePause {
		return
	}
	r.ticks++

	r.snow.Advance(r.rng)

	if r.rng.Float64()*100 < r.cfg.Spawn.ChancePercent {
		r.trySpawn(now)
	}

	// Every gift is judged against the start-of-tick speed and catcher.
	speed := r.speed.Speed()
	catcher := r.CatcherRect()
	catchLine := r.cfg.CatchLine()
	bottom := float64(r.cfg.Field.Height)

	for i := range r.gifts {
		g := &r.gifts[i]
		g.Speed = speed
		g.Y += speed
		g.Rotation += speed * r.cfg.Physics.RotationFactor
	}

	removed := make(map[uint64]bool)
	for _, g := range r.gifts {
		if r.over {
			break
		}
		switch {
		case g.Y > catchLine && r.giftRect(g).OverlapsX(catcher):
			removed[g.ID] = true
			r.catch(now)
		case g.Y > bottom:
			removed[g.ID] = true
			r.miss()
		}
	}

	if len(removed) > 0 {
		kept := r.gifts[:0]
		for _, g := range r.gifts {
			if removed[g.ID] {
				r.activeLanes[g.Lane] = false
				continue
			}
			kept = append(kept, g)
		}
		r.gifts = kept
	}

	if r.message != nil && now > r.message.Expires {
		r.message = nil
	}
}

// catch applies the scoring side effects of one caught gift.
func (r *Round) catch(now time.Duration) {
	r.score++

	r.speed.Observe(r.score)

	if title, ok := r.achievements.Unlock(r.score); ok {
		r.showMessage(fmt.Sprintf(r.cfg.Gameplay.AchievementFormat, title), now)
	}

	if r.score == r.cfg.Gameplay.PauseScore && !r.pausePassed {
		r.milestonePause = true
		r.pausePassed = true
	}

	if r.score == r.cfg.Gameplay.TerminalScore && !r.terminalPassed {
		r.terminalPassed = true
		r.finish(OverTerminalScore)
	}
}

// miss applies the penalty for a gift that fell past the bottom.
func (r *Round) miss() {
	r.lives--
	if r.lives <= 0 {
		r.finish(OverLivesDepleted)
	}
}

// finish ends the round and offers the final score to the keeper.
func (r *Round) finish(reason OverReason) {
	r.over = true
	r.overReason = reason
	if r.keeper != nil {
		r.keeper.UpdateIfHigher(r.score)
	}
}

// showMessage replaces the current banner and restarts its timer.
func (r *Round) showMessage(text string, now time.Duration) {
	r.message = &Message{
		Text:    text,
		Expires: now + time.Duration(r.cfg.Gameplay.MessageDurationMS)*time.Millisecond,
	}
}

// ID returns the unique identifier of this round.
func (r *Round) ID() uuid.UUID {
	return r.id
}

// Config returns the configuration the round was built with.
func (r *Round) Config() config.SantaConfig {
	return r.cfg
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// FallSpeed returns the speed applied to every falling gift.
func (r *Round) FallSpeed() float64 {
	return r.speed.Speed()
}

// CatcherLane returns the lane the catcher occupies.
func (r *Round) CatcherLane() int {
	return r.catcherLane
}

// Gifts returns a copy of the falling gifts in creation order.
func (r *Round) Gifts() []Gift {
	out := make([]Gift, len(r.gifts))
	copy(out, r.gifts)
	return out
}

// ActiveLanes returns the indices of lanes that currently hold a gift.
func (r *Round) ActiveLanes() []int {
	lanes := make([]int, 0, len(r.activeLanes))
	for lane, busy := range r.activeLanes {
		if busy {
			lanes = append(lanes, lane)
		}
	}
	return lanes
}

// Message returns the banner text and whether one is showing.
func (r *Round) Message() (string, bool) {
	if r.message == nil {
		return "", false
	}
	return r.message.Text, true
}

// ShownAchievements returns the milestone scores announced so far.
func (r *Round) ShownAchievements() []int {
	return r.achievements.Shown()
}

// Snow returns the decorative snow particles.
func (r *Round) Snow() []Flake {
	return r.snow.Flakes()
}

// IsActive reports whether Start has been called.
func (r *Round) IsActive() bool {
	return r.active
}

// IsOver reports whether the round has ended.
func (r *Round) IsOver() bool {
	return r.over
}

// OverReason returns the terminal condition, or OverNone while playing.
func (r *Round) OverReason() OverReason {
	return r.overReason
}

// MilestonePaused reports whether the round waits for a confirm.
func (r *Round) MilestonePaused() bool {
	return r.milestonePause
}

// Phase returns the presentation state of the round.
func (r *Round) Phase() Phase {
	switch {
	case r.over && r.overReason == OverTerminalScore:
		return PhaseVictory
	case r.over:
		return PhaseGameOver
	case r.milestonePause:
		return PhaseMilestone
	default:
		return PhasePlaying
	}
}

// Ticks returns the number of simulated frames.
func (r *Round) Ticks() uint64 {
	return r.ticks
}

// Best returns the keeper's best score, or 0 without a keeper.
func (r *Round) Best() int {
	if r.keeper == nil {
		return 0
	}
	return r.keeper.Best()
}

// CatcherRect returns the catcher's box in field coordinates.
func (r *Round) CatcherRect() core.FRect {
	c := r.cfg.Catcher
	x := r.catcherLane*r.laneWidth + (r.laneWidth-c.Width)/2
	y := r.cfg.Field.Height - c.BottomGap
	return core.NewFRect(float64(x), float64(y), float64(c.Width), float64(c.Height))
}
