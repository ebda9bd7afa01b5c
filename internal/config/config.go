// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the runner.
package config

import "time"

// RunnerConfig contains all configuration for the endless runner.
// Distances are field pixels; the terminal scene scales them to cells.
type RunnerConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
}

// FieldConfig defines the visible play area.
type FieldConfig struct {
	Width  float64 `yaml:"width"`  // Obstacles spawn at this x
	Height float64 `yaml:"height"` // Vertical extent above the ground
}

// PlayerConfig defines the character's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the jump arc.
type PhysicsConfig struct {
	Gravity              float64 `yaml:"gravity"`                  // Velocity lost per tick
	JumpImpulse          float64 `yaml:"jump_impulse"`             // Initial upward velocity
	JumpTickMS           int     `yaml:"jump_tick_ms"`             // Jump simulation interval
	CancelJumpOnGameOver bool    `yaml:"cancel_jump_on_game_over"` // Freeze an in-flight jump when the session ends
}

// JumpTick returns the jump simulation interval.
func (p PhysicsConfig) JumpTick() time.Duration {
	return time.Duration(p.JumpTickMS) * time.Millisecond
}

// ScrollConfig defines obstacle speed per frame.
type ScrollConfig struct {
	BaseSpeed float64 `yaml:"base_speed"` // Speed at session start
	Increment float64 `yaml:"increment"`  // Added every frame
}

// SpawnConfig defines the obstacle spawn cycle.
type SpawnConfig struct {
	MinIntervalMS   int     `yaml:"min_interval_ms"`
	MaxIntervalMS   int     `yaml:"max_interval_ms"`
	GroundOnlyCount int     `yaml:"ground_only_count"` // First N obstacles are always ground-level
	ElevatedChance  float64 `yaml:"elevated_chance"`   // Chance of an elevated obstacle after that
	ElevatedOffset  float64 `yaml:"elevated_offset"`   // Bottom edge of elevated obstacles
}

// MinInterval returns the shortest delay between spawns.
func (s SpawnConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// MaxInterval returns the longest delay between spawns.
func (s SpawnConfig) MaxInterval() time.Duration {
	return time.Duration(s.MaxIntervalMS) * time.Millisecond
}

// CollisionConfig defines the proximity band and clearance threshold.
type CollisionConfig struct {
	BandMin         float64 `yaml:"band_min"`         // Lowest obstacle x checked
	BandMax         float64 `yaml:"band_max"`         // Highest obstacle x checked
	GroundClearance float64 `yaml:"ground_clearance"` // Offset needed to clear a ground obstacle
}

// ObstacleConfig lists the three visual variants.
type ObstacleConfig struct {
	Variants []VariantConfig `yaml:"variants"`
}

// VariantConfig defines the footprint of one obstacle variant.
type VariantConfig struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// VariantCount is the number of obstacle variants a config must define.
const VariantCount = 3
