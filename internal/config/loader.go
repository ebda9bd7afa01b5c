package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// loadFile reads and decodes one YAML file over the defaults.
func loadFile(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() RunnerConfig {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRunnerConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// Marshal encodes the configuration as YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate reports every setting the engine cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Player.Width > 0, "player.width must be positive, got %v", c.Player.Width)
	check(c.Player.Height > 0, "player.height must be positive, got %v", c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X < c.Field.Width, "player.x must be inside the field, got %v", c.Player.X)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse > 0, "physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	check(c.Physics.JumpTickMS > 0, "physics.jump_tick_ms must be positive, got %d", c.Physics.JumpTickMS)

	check(c.Scroll.BaseSpeed >= 0, "scroll.base_speed must not be negative, got %v", c.Scroll.BaseSpeed)
	check(c.Scroll.Increment >= 0, "scroll.increment must not be negative, got %v", c.Scroll.Increment)

	check(c.Spawn.MinIntervalMS > 0, "spawn.min_interval_ms must be positive, got %d", c.Spawn.MinIntervalMS)
	check(c.Spawn.MaxIntervalMS >= c.Spawn.MinIntervalMS,
		"spawn.max_interval_ms (%d) must not be below spawn.min_interval_ms (%d)",
		c.Spawn.MaxIntervalMS, c.Spawn.MinIntervalMS)
	check(c.Spawn.GroundOnlyCount >= 0, "spawn.ground_only_count must not be negative, got %d", c.Spawn.GroundOnlyCount)
	check(c.Spawn.ElevatedChance >= 0 && c.Spawn.ElevatedChance <= 1,
		"spawn.elevated_chance must be within [0, 1], got %v", c.Spawn.ElevatedChance)
	check(c.Spawn.ElevatedOffset > 0, "spawn.elevated_offset must be positive, got %v", c.Spawn.ElevatedOffset)

	check(c.Collision.BandMin <= c.Collision.BandMax,
		"collision.band_min (%v) must not exceed collision.band_max (%v)",
		c.Collision.BandMin, c.Collision.BandMax)
	check(c.Collision.GroundClearance >= 0, "collision.ground_clearance must not be negative, got %v", c.Collision.GroundClearance)

	check(len(c.Obstacles.Variants) == VariantCount,
		"obstacles.variants must list %d variants, got %d", VariantCount, len(c.Obstacles.Variants))
	for i, v := range c.Obstacles.Variants {
		check(v.Width > 0, "obstacles.variants[%d].width must be positive, got %v", i, v.Width)
		check(v.Height > 0, "obstacles.variants[%d].height must be positive, got %v", i, v.Height)
	}

	return errors.Join(errs...)
}
