package santa

// Phase is the presentation state a round is in.
// Renderers pick the screen to draw from it.
type Phase int

const (
	PhasePlaying   Phase = iota // Gifts are falling
	PhaseMilestone              // First major milestone reached, waiting for confirm
	PhaseGameOver               // All lives lost
	PhaseVictory                // Terminal score reached
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseMilestone:
		return "milestone"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// OverReason tells which terminal condition ended a round.
type OverReason int

const (
	OverNone          OverReason = iota
	OverLivesDepleted            // Lives reached zero
	OverTerminalScore            // Score reached the terminal milestone
)

// String returns a human-readable name for the reason.
func (r OverReason) String() string {
	switch r {
	case OverNone:
		return "none"
	case OverLivesDepleted:
		return "lives_depleted"
	case OverTerminalScore:
		return "terminal_score"
	default:
		return "unknown"
	}
}
