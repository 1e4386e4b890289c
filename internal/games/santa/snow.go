package santa

import (
	"math/rand"

	"github.com/vovakirdan/santa-catch/internal/config"
)

// Flake is one decorative snow particle.
type Flake struct {
	X, Y  float64
	Speed float64
}

// Snowfall drifts flakes down the field and wraps them back above the top.
// It has no effect on scoring.
type Snowfall struct {
	flakes []Flake
	width  int
	height int
}

// NewSnowfall scatters flakes just above the field.
func NewSnowfall(cfg config.SnowConfig, field config.FieldConfig, rng *rand.Rand) *Snowfall {
	s := &Snowfall{
		flakes: make([]Flake, cfg.Flakes),
		width:  field.Width,
		height: field.Height,
	}
	for i := range s.flakes {
		s.flakes[i] = Flake{
			X:     float64(rng.Intn(field.Width + 1)),
			Y:     float64(-rng.Intn(101)),
			Speed: cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
		}
	}
	return s
}

// Advance moves every flake down by its speed.
// Flakes below the bottom edge reappear at a random spot above the top.
func (s *Snowfall) Advance(rng *rand.Rand) {
	for i := range s.flakes {
		f := &s.flakes[i]
		f.Y += f.Speed
		if f.Y > float64(s.height) {
			f.Y = float64(-rng.Intn(51))
			f.X = float64(rng.Intn(s.width + 1))
		}
	}
}

// Flakes returns the current particles. The slice must not be modified.
func (s *Snowfall) Flakes() []Flake {
	return s.flakes
}
