package config

import "time"

// DifficultyManager calculates level-dependent game parameters.
// Difficulty only ever increases with level and saturates at the configured floor.
type DifficultyManager struct {
	cfg MoonPatrolGameplay
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg MoonPatrolGameplay) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// ScrollSpeed returns the world scroll speed for the given level.
func (d *DifficultyManager) ScrollSpeed(level int) int {
	if level < 1 {
		level = 1
	}
	return d.cfg.ScrollSpeed + (level-1)*d.cfg.SpeedStep
}

// SpawnInterval returns the obstacle spawn interval after reaching the given level.
// Level 1 uses the base interval; later levels use
// max(min, base - level*step).
func (d *DifficultyManager) SpawnInterval(level int) time.Duration {
	ms := d.cfg.SpawnIntervalMS
	if level > 1 {
		ms = max(d.cfg.SpawnMinMS, d.cfg.SpawnIntervalMS-level*d.cfg.SpawnStepMS)
	}
	return time.Duration(ms) * time.Millisecond
}

// ApplyMoonPatrolPreset modifies the config based on a difficulty preset.
func ApplyMoonPatrolPreset(cfg *MoonPatrolConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.ScrollSpeed = 4
		cfg.Gameplay.SpawnIntervalMS = 1800
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
		cfg.Gameplay.ScrollSpeed = 5
		cfg.Gameplay.SpawnIntervalMS = 1500
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.ScrollSpeed = 6
		cfg.Gameplay.SpawnIntervalMS = 1200
	}
}
