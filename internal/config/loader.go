package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMoonPatrol loads Moon Patrol configuration.
// Search order: customPath -> ~/.moonpatrol/configs/moonpatrol.yaml -> ./configs/moonpatrol.yaml -> embedded default.
// Files are applied on top of the defaults, so a file may override only some fields.
func LoadMoonPatrol(customPath string) (MoonPatrolConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MoonPatrolConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return MoonPatrolConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// A file that exists but does not parse is an error, not a fallthrough
	for _, path := range []string{userConfigPath("moonpatrol.yaml"), filepath.Join("configs", "moonpatrol.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return MoonPatrolConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMoonPatrolYAML)
	if err != nil {
		return DefaultMoonPatrolConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (MoonPatrolConfig, error) {
	cfg := DefaultMoonPatrolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MoonPatrolConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MoonPatrolConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg MoonPatrolConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".moonpatrol", "configs", filename)
}

// FieldError reports a single invalid config value.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the config describes a playable game.
// All problems are reported at once.
func (c MoonPatrolConfig) Validate() error {
	var errs []error
	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be > 0, got %d", v)})
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	if c.World.GroundY <= 0 || c.World.GroundY >= c.World.Height {
		errs = append(errs, FieldError{Field: "world.ground_y", Message: fmt.Sprintf("must be inside (0, %d), got %d", c.World.Height, c.World.GroundY)})
	}

	positive("vehicle.width", c.Vehicle.Width)
	positive("vehicle.height", c.Vehicle.Height)
	positive("vehicle.gravity", c.Vehicle.Gravity)
	if c.Vehicle.JumpImpulse >= 0 {
		errs = append(errs, FieldError{Field: "vehicle.jump_impulse", Message: "must be negative (up)"})
	}
	if c.Vehicle.X < 0 || c.Vehicle.X+c.Vehicle.Width > c.World.Width {
		errs = append(errs, FieldError{Field: "vehicle.x", Message: "vehicle must fit inside the world"})
	}

	positive("weapon.projectile_width", c.Weapon.ProjectileWidth)
	positive("weapon.projectile_height", c.Weapon.ProjectileHeight)
	positive("weapon.projectile_speed", c.Weapon.ProjectileSpeed)
	if c.Weapon.Cooldown < 0 {
		errs = append(errs, FieldError{Field: "weapon.cooldown", Message: "must be >= 0"})
	}

	for name, b := range map[string]BoulderSize{
		"obstacles.small_boulder": c.Obstacles.SmallBoulder,
		"obstacles.large_boulder": c.Obstacles.LargeBoulder,
	} {
		positive(name+".width", b.Width)
		positive(name+".height", b.Height)
		positive(name+".hits", b.Hits)
	}
	if c.Obstacles.LargeChance < 0 || c.Obstacles.LargeChance > 1 {
		errs = append(errs, FieldError{Field: "obstacles.large_chance", Message: "must be within [0, 1]"})
	}
	positive("obstacles.crater_min_width", c.Obstacles.CraterMinWidth)
	positive("obstacles.crater_min_depth", c.Obstacles.CraterMinDepth)
	if c.Obstacles.CraterMaxWidth < c.Obstacles.CraterMinWidth {
		errs = append(errs, FieldError{Field: "obstacles.crater_max_width", Message: "must be >= crater_min_width"})
	}
	if c.Obstacles.CraterMaxDepth < c.Obstacles.CraterMinDepth {
		errs = append(errs, FieldError{Field: "obstacles.crater_max_depth", Message: "must be >= crater_min_depth"})
	}

	positive("gameplay.lives", c.Gameplay.Lives)
	positive("gameplay.scroll_speed", c.Gameplay.ScrollSpeed)
	positive("gameplay.level_duration", c.Gameplay.LevelDuration)
	positive("gameplay.point_distance", c.Gameplay.PointDistance)
	positive("gameplay.spawn_interval_ms", c.Gameplay.SpawnIntervalMS)
	positive("gameplay.spawn_min_ms", c.Gameplay.SpawnMinMS)
	if c.Gameplay.SpeedStep < 1 {
		errs = append(errs, FieldError{Field: "gameplay.speed_step", Message: fmt.Sprintf("must be >= 1, got %d", c.Gameplay.SpeedStep)})
	}
	if c.Gameplay.SpawnMinMS > c.Gameplay.SpawnIntervalMS {
		errs = append(errs, FieldError{Field: "gameplay.spawn_min_ms", Message: fmt.Sprintf("must be <= spawn_interval_ms (%d), got %d", c.Gameplay.SpawnIntervalMS, c.Gameplay.SpawnMinMS)})
	}
	if c.Gameplay.SpawnStepMS < 0 {
		errs = append(errs, FieldError{Field: "gameplay.spawn_step_ms", Message: "must be >= 0"})
	}
	if c.Gameplay.BoulderBonus < 0 {
		errs = append(errs, FieldError{Field: "gameplay.boulder_bonus", Message: "must be >= 0"})
	}

	return errors.Join(errs...)
}
