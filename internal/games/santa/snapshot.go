package santa

import "math"

// Snapshot is the observable state of a round at one frame.
// Uses primitive types only so it can be compared and logged.
type Snapshot struct {
	RoundID      string
	Tick         uint64
	Phase        string
	OverReason   string
	Score        int
	Lives        int
	FallSpeed    float64
	CatcherLane  int
	Message      string
	Gifts        []GiftSnapshot
	Achievements []int
}

// GiftSnapshot is the renderer-facing view of one falling gift.
type GiftSnapshot struct {
	ID       uint64
	Lane     int
	X, Y     float64
	Rotation float64
	Color    int
}

// Snapshot returns the current round as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	return g.round.Snapshot()
}

// Snapshot returns the round's observable state.
func (r *Round) Snapshot() Snapshot {
	gifts := make([]GiftSnapshot, len(r.gifts))
	for i, gift := range r.gifts {
		gifts[i] = GiftSnapshot{
			ID:       gift.ID,
			Lane:     gift.Lane,
			X:        gift.X,
			Y:        gift.Y,
			Rotation: gift.Rotation,
			Color:    int(gift.Color),
		}
	}

	msg, _ := r.Message()

	return Snapshot{
		RoundID:      r.id.String(),
		Tick:         r.ticks,
		Phase:        r.Phase().String(),
		OverReason:   r.overReason.String(),
		Score:        r.score,
		Lives:        r.lives,
		FallSpeed:    r.FallSpeed(),
		CatcherLane:  r.catcherLane,
		Message:      msg,
		Gifts:        gifts,
		Achievements: r.ShownAchievements(),
	}
}

// Hash returns a simple hash of the simulated state for determinism testing.
// The round ID is random and left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CatcherLane) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FallSpeed)

	for _, gift := range snap.Gifts {
		h = h*31 + gift.ID
		h = h*31 + uint64(gift.Lane)  //#nosec G115 -- hash computation
		h = h*31 + uint64(gift.Color) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(gift.Y)
	}

	for _, score := range snap.Achievements {
		h = h*31 + uint64(score) //#nosec G115 -- hash computation
	}

	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	return h
}
