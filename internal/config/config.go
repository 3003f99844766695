// Package config provides YAML-based game configuration loading and
// level/difficulty curves for Moon Patrol.
package config

// MoonPatrolConfig contains all configuration for the Moon Patrol game.
// All distances are in world units (the playfield is World.Width x World.Height).
type MoonPatrolConfig struct {
	World     MoonPatrolWorld     `yaml:"world"`
	Vehicle   MoonPatrolVehicle   `yaml:"vehicle"`
	Weapon    MoonPatrolWeapon    `yaml:"weapon"`
	Obstacles MoonPatrolObstacles `yaml:"obstacles"`
	Gameplay  MoonPatrolGameplay  `yaml:"gameplay"`
	Sounds    MoonPatrolSounds    `yaml:"sounds"`
}

// MoonPatrolWorld defines the playfield geometry.
type MoonPatrolWorld struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"` // Top edge of the ground strip
}

// MoonPatrolVehicle defines the buggy and its jump physics.
type MoonPatrolVehicle struct {
	X           int `yaml:"x"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	JumpImpulse int `yaml:"jump_impulse"` // Negative = up
	Gravity     int `yaml:"gravity"`      // Added to velocity every tick
}

// MoonPatrolWeapon defines the forward cannon.
type MoonPatrolWeapon struct {
	ProjectileWidth  int `yaml:"projectile_width"`
	ProjectileHeight int `yaml:"projectile_height"`
	ProjectileSpeed  int `yaml:"projectile_speed"`
	Cooldown         int `yaml:"cooldown"` // Ticks between shots
}

// BoulderSize describes one boulder variant.
type BoulderSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Hits   int `yaml:"hits"`
}

// MoonPatrolObstacles defines obstacle generation.
type MoonPatrolObstacles struct {
	SmallBoulder   BoulderSize `yaml:"small_boulder"`
	LargeBoulder   BoulderSize `yaml:"large_boulder"`
	LargeChance    float64     `yaml:"large_chance"` // Probability a boulder is the large variant
	CraterMinWidth int         `yaml:"crater_min_width"`
	CraterMaxWidth int         `yaml:"crater_max_width"`
	CraterMinDepth int         `yaml:"crater_min_depth"`
	CraterMaxDepth int         `yaml:"crater_max_depth"`
}

// MoonPatrolGameplay defines lives, scoring and level progression.
type MoonPatrolGameplay struct {
	Lives           int `yaml:"lives"`
	ScrollSpeed     int `yaml:"scroll_speed"`      // Speed at level 1
	SpeedStep       int `yaml:"speed_step"`        // Added per level
	LevelDuration   int `yaml:"level_duration"`    // Distance per level
	BoulderBonus    int `yaml:"boulder_bonus"`     // Points for destroying a boulder
	PointDistance   int `yaml:"point_distance"`    // Distance per trickle point
	SpawnIntervalMS int `yaml:"spawn_interval_ms"` // Base obstacle interval
	SpawnStepMS     int `yaml:"spawn_step_ms"`     // Interval reduction per level
	SpawnMinMS      int `yaml:"spawn_min_ms"`      // Interval floor
}

// ToneConfig describes a single beep.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"` // Seconds
	Volume    float64 `yaml:"volume"`
}

// MoonPatrolSounds maps game events to beeps.
type MoonPatrolSounds struct {
	Jump     ToneConfig `yaml:"jump"`
	Fire     ToneConfig `yaml:"fire"`
	Crash    ToneConfig `yaml:"crash"`
	LifeLost ToneConfig `yaml:"life_lost"`
	LevelUp  ToneConfig `yaml:"level_up"`
	GameOver ToneConfig `yaml:"game_over"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
