package config

import (
	_ "embed"
)

//go:embed defaults/moonpatrol.yaml
var defaultMoonPatrolYAML []byte

// DefaultMoonPatrolConfig returns the built-in Moon Patrol configuration.
// It mirrors defaults/moonpatrol.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultMoonPatrolConfig() MoonPatrolConfig {
	return MoonPatrolConfig{
		World: MoonPatrolWorld{
			Width:   800,
			Height:  400,
			GroundY: 360,
		},
		Vehicle: MoonPatrolVehicle{
			X:           100,
			Width:       40,
			Height:      20,
			JumpImpulse: -15,
			Gravity:     1,
		},
		Weapon: MoonPatrolWeapon{
			ProjectileWidth:  10,
			ProjectileHeight: 4,
			ProjectileSpeed:  10,
			Cooldown:         15,
		},
		Obstacles: MoonPatrolObstacles{
			SmallBoulder:   BoulderSize{Width: 20, Height: 20, Hits: 1},
			LargeBoulder:   BoulderSize{Width: 40, Height: 40, Hits: 2},
			LargeChance:    0.2,
			CraterMinWidth: 40,
			CraterMaxWidth: 80,
			CraterMinDepth: 20,
			CraterMaxDepth: 40,
		},
		Gameplay: MoonPatrolGameplay{
			Lives:           3,
			ScrollSpeed:     5,
			SpeedStep:       1,
			LevelDuration:   2000,
			BoulderBonus:    50,
			PointDistance:   100,
			SpawnIntervalMS: 1500,
			SpawnStepMS:     100,
			SpawnMinMS:      500,
		},
		Sounds: MoonPatrolSounds{
			Jump:     ToneConfig{Frequency: 440, Duration: 0.2, Volume: 0.5},
			Fire:     ToneConfig{Frequency: 880, Duration: 0.1, Volume: 0.5},
			Crash:    ToneConfig{Frequency: 60, Duration: 0.5, Volume: 0.5},
			LifeLost: ToneConfig{Frequency: 220, Duration: 0.5, Volume: 0.5},
			LevelUp:  ToneConfig{Frequency: 550, Duration: 0.5, Volume: 0.5},
			GameOver: ToneConfig{Frequency: 110, Duration: 1.0, Volume: 0.5},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMoonPatrolYAML
}
