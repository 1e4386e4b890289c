package config

import (
	_ "embed"
)

//go:embed defaults/santa.yaml
var defaultSantaYAML []byte

// DefaultSantaConfig returns the default Santa catch configuration.
// It mirrors defaults/santa.yaml and is used when the embedded file cannot be parsed.
func DefaultSantaConfig() SantaConfig {
	return SantaConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Lanes: LanesConfig{
			Count: 4,
		},
		Gift: GiftConfig{
			Size:   40,
			SpawnY: 150,
		},
		Catcher: CatcherConfig{
			Width:       80,
			Height:      100,
			BottomGap:   120,
			CatchOffset: 130,
		},
		Physics: PhysicsConfig{
			BaseSpeed:      1.0,
			SpeedIncrement: 0.2,
			SpeedBand:      10,
			RotationFactor: 1.5,
		},
		Spawn: SpawnConfig{
			ChancePercent: 1.0,
			DelayMS:       1000,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			StartScore:        1, // The original game starts counting at one
			PauseScore:        100,
			TerminalScore:     555,
			MessageDurationMS: 3000,
			AchievementFormat: "Получена ачивка: %s",
		},
		Snow: SnowConfig{
			Flakes:   80,
			MinSpeed: 0.5,
			MaxSpeed: 2.0,
		},
		Achievements: []AchievementConfig{
			{Score: 10, Title: "0+"},
			{Score: 13, Title: "мзиф"},
			{Score: 31, Title: "на превьюшечку"},
			{Score: 42, Title: "Всем нашим"},
			{Score: 55, Title: "пять пять пять"},
			{Score: 87, Title: "Ремнант"},
			{Score: 89, Title: "офф"},
			{Score: 404, Title: "не найдено"},
			{Score: 505, Title: "имя"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSantaYAML
}
