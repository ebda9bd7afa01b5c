package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string means
// "keep the loaded config" and returns an empty preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scroll.BaseSpeed *= 0.75
		cfg.Scroll.Increment *= 0.5
		cfg.Spawn.MinIntervalMS = cfg.Spawn.MinIntervalMS * 5 / 4
		cfg.Spawn.MaxIntervalMS = cfg.Spawn.MaxIntervalMS * 5 / 4
	case DifficultyHard:
		cfg.Scroll.BaseSpeed *= 1.5
		cfg.Scroll.Increment *= 2
		cfg.Spawn.MinIntervalMS = cfg.Spawn.MinIntervalMS * 3 / 4
		cfg.Spawn.MaxIntervalMS = cfg.Spawn.MaxIntervalMS * 3 / 4
	case DifficultyFixed:
		// No acceleration: the session keeps its base speed until it ends
		cfg.Scroll.Increment = 0
	}
}

// Load resolves the config for the CLI: it loads from the search path,
// applies the preset and validates the result.
func Load(customPath, preset string) (RunnerConfig, error) {
	p, err := ParsePreset(preset)
	if err != nil {
		return RunnerConfig{}, err
	}

	cfg, err := LoadRunner(customPath)
	if err != nil {
		return cfg, err
	}

	ApplyPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config after %q preset: %w", p, err)
	}
	return cfg, nil
}
