// Package config provides YAML-based game configuration loading for the
// Santa catch game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SantaConfig contains all configuration for a round of Santa catch.
type SantaConfig struct {
	Field        FieldConfig         `yaml:"field"`
	Lanes        LanesConfig         `yaml:"lanes"`
	Gift         GiftConfig          `yaml:"gift"`
	Catcher      CatcherConfig       `yaml:"catcher"`
	Physics      PhysicsConfig       `yaml:"physics"`
	Spawn        SpawnConfig         `yaml:"spawn"`
	Gameplay     GameplayConfig      `yaml:"gameplay"`
	Snow         SnowConfig          `yaml:"snow"`
	Achievements []AchievementConfig `yaml:"achievements"`
}

// FieldConfig defines the play-field size in field units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LanesConfig defines the lane layout.
type LanesConfig struct {
	Count int `yaml:"count"`
}

// GiftConfig defines falling gift geometry.
type GiftConfig struct {
	Size   int     `yaml:"size"`
	SpawnY float64 `yaml:"spawn_y"`
}

// CatcherConfig defines the catcher and the catch line.
type CatcherConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	BottomGap   int `yaml:"bottom_gap"`   // Distance from catcher top to field bottom
	CatchOffset int `yaml:"catch_offset"` // Catch line sits this far above the field bottom
}

// PhysicsConfig defines fall speed and its progression.
type PhysicsConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	SpeedBand      int     `yaml:"speed_band"` // Score interval between speed increases
	RotationFactor float64 `yaml:"rotation_factor"`
}

// SpawnConfig defines the two spawn gates.
type SpawnConfig struct {
	ChancePercent float64 `yaml:"chance_percent"` // Per-frame spawn attempt probability, in percent
	DelayMS       int     `yaml:"delay_ms"`       // Minimum time between spawns
}

// GameplayConfig defines scoring, lives and milestones.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	StartScore        int `yaml:"start_score"`
	PauseScore        int `yaml:"pause_score"`    // First major milestone, pauses the round
	TerminalScore     int `yaml:"terminal_score"` // Ends the round as a victory
	MessageDurationMS int `yaml:"message_duration_ms"`

	// AchievementFormat wraps an achievement title into the banner text.
	// It must hold exactly one %s verb.
	AchievementFormat string `yaml:"achievement_format"`
}

// SnowConfig defines the decorative snowfall.
type SnowConfig struct {
	Flakes   int     `yaml:"flakes"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// AchievementConfig maps a score to the text shown when it is reached.
type AchievementConfig struct {
	Score int    `yaml:"score"`
	Title string `yaml:"title"`
}

// LaneWidth returns the width of one lane in field units.
func (c SantaConfig) LaneWidth() int {
	if c.Lanes.Count <= 0 {
		return 0
	}
	return c.Field.Width / c.Lanes.Count
}

// CatchLine returns the y coordinate a gift must pass to be catchable.
func (c SantaConfig) CatchLine() float64 {
	return float64(c.Field.Height - c.Catcher.CatchOffset)
}

// Validate checks that the configuration describes a playable round.
func (c SantaConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Lanes.Count <= 0 {
		errs = append(errs, fmt.Errorf("lane count must be positive, got %d", c.Lanes.Count))
	} else if c.LaneWidth() < c.Gift.Size {
		errs = append(errs, fmt.Errorf("lane width %d is narrower than gift size %d", c.LaneWidth(), c.Gift.Size))
	}
	if c.Gift.Size <= 0 {
		errs = append(errs, fmt.Errorf("gift size must be positive, got %d", c.Gift.Size))
	}
	if c.Catcher.Width <= 0 {
		errs = append(errs, fmt.Errorf("catcher width must be positive, got %d", c.Catcher.Width))
	}
	if c.Catcher.CatchOffset <= 0 || c.Catcher.CatchOffset >= c.Field.Height {
		errs = append(errs, fmt.Errorf("catch offset must be inside the field, got %d", c.Catcher.CatchOffset))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base speed must be positive, got %v", c.Physics.BaseSpeed))
	}
	if c.Physics.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("speed increment must not be negative, got %v", c.Physics.SpeedIncrement))
	}
	if c.Physics.SpeedBand <= 0 {
		errs = append(errs, fmt.Errorf("speed band must be positive, got %d", c.Physics.SpeedBand))
	}
	if c.Spawn.ChancePercent < 0 || c.Spawn.ChancePercent >= 100 {
		errs = append(errs, fmt.Errorf("spawn chance must be within [0, 100), got %v", c.Spawn.ChancePercent))
	}
	if c.Spawn.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("spawn delay must not be negative, got %d", c.Spawn.DelayMS))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.StartScore < 0 {
		errs = append(errs, fmt.Errorf("start score must not be negative, got %d", c.Gameplay.StartScore))
	}
	if c.Gameplay.PauseScore <= c.Gameplay.StartScore {
		errs = append(errs, fmt.Errorf("pause score %d must be above start score %d", c.Gameplay.PauseScore, c.Gameplay.StartScore))
	}
	if c.Gameplay.TerminalScore <= c.Gameplay.StartScore {
		errs = append(errs, fmt.Errorf("terminal score %d must be above start score %d", c.Gameplay.TerminalScore, c.Gameplay.StartScore))
	}
	if f := c.Gameplay.AchievementFormat; strings.Count(f, "%") != 1 || !strings.Contains(f, "%s") {
		errs = append(errs, fmt.Errorf("achievement format must hold exactly one %%s verb, got %q", f))
	}
	if c.Snow.MinSpeed > c.Snow.MaxSpeed {
		errs = append(errs, fmt.Errorf("snow min speed %v exceeds max speed %v", c.Snow.MinSpeed, c.Snow.MaxSpeed))
	}

	seen := make(map[int]bool, len(c.Achievements))
	for _, a := range c.Achievements {
		if seen[a.Score] {
			errs = append(errs, fmt.Errorf("duplicate achievement for score %d", a.Score))
		}
		seen[a.Score] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid santa config: %w", errors.Join(errs...))
	}
	return nil
}
