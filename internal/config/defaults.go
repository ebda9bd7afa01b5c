package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It matches defaults/runner.yaml and is the fallback when the embedded
// YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 200,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  40,
			Height: 60,
		},
		Physics: PhysicsConfig{
			Gravity:              0.7,
			JumpImpulse:          12,
			JumpTickMS:           20,
			CancelJumpOnGameOver: true,
		},
		Scroll: ScrollConfig{
			BaseSpeed: 3,
			Increment: 0.0001,
		},
		Spawn: SpawnConfig{
			MinIntervalMS:   1000,
			MaxIntervalMS:   2000,
			GroundOnlyCount: 6,
			ElevatedChance:  0.5,
			ElevatedOffset:  63,
		},
		Collision: CollisionConfig{
			BandMin:         50,
			BandMax:         110,
			GroundClearance: 60,
		},
		Obstacles: ObstacleConfig{
			Variants: []VariantConfig{
				{Name: "small", Width: 20, Height: 40},
				{Name: "medium", Width: 30, Height: 50},
				{Name: "large", Width: 45, Height: 40},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
