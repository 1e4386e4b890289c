package config

// SpeedProgression raises fall speed once per completed score band.
type SpeedProgression struct {
	cfg        PhysicsConfig
	speed      float64
	checkpoint int // Score at which the last increase happened
}

// NewSpeedProgression starts a progression at the configured base speed.
func NewSpeedProgression(cfg PhysicsConfig) *SpeedProgression {
	return &SpeedProgression{
		cfg:   cfg,
		speed: cfg.BaseSpeed,
	}
}

// Speed returns the current fall speed.
func (p *SpeedProgression) Speed() float64 {
	return p.speed
}

// Checkpoint returns the score of the last speed increase, or 0.
func (p *SpeedProgression) Checkpoint() int {
	return p.checkpoint
}

// Observe records a new score and reports whether it raised the speed.
// A band boundary only counts once, even if the score is observed again.
func (p *SpeedProgression) Observe(score int) bool {
	if p.cfg.SpeedBand <= 0 || score <= 0 {
		return false
	}
	if score%p.cfg.SpeedBand != 0 || score <= p.checkpoint {
		return false
	}
	p.speed += p.cfg.SpeedIncrement
	p.checkpoint = score
	return true
}
