package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMoonPatrolConfig()) {
		t.Errorf("embedded YAML and DefaultMoonPatrolConfig() differ:\n%+v\n%+v", cfg, DefaultMoonPatrolConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultMoonPatrolConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  lives: 7\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.ScrollSpeed != 5 {
		t.Errorf("unspecified fields should keep defaults, ScrollSpeed = %d", cfg.Gameplay.ScrollSpeed)
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultMoonPatrolConfig()
	cfg.Gameplay.Lives = 0
	cfg.Vehicle.JumpImpulse = 3
	cfg.Obstacles.CraterMaxWidth = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var fe FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a FieldError in %v", err)
	}

	for _, field := range []string{"gameplay.lives", "vehicle.jump_impulse", "obstacles.crater_max_width"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error should mention %s, got %v", field, err)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "gameplay: [1, 2"},
		{"ground outside world", "world:\n  ground_y: 500\n"},
		{"chance above one", "obstacles:\n  large_chance: 1.5\n"},
		{"speed does not grow", "gameplay:\n  speed_step: 0\n"},
		{"spawn floor above start", "gameplay:\n  spawn_interval_ms: 1500\n  spawn_min_ms: 3000\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  boulder_bonus: 75\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMoonPatrol(path)
	if err != nil {
		t.Fatalf("LoadMoonPatrol failed: %v", err)
	}
	if cfg.Gameplay.BoulderBonus != 75 {
		t.Errorf("BoulderBonus = %d, expected 75", cfg.Gameplay.BoulderBonus)
	}

	if _, err := LoadMoonPatrol(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadMoonPatrol("")
	if err != nil {
		t.Fatalf("LoadMoonPatrol failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMoonPatrolConfig()) {
		t.Error("expected embedded defaults")
	}

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "moonpatrol.yaml"), []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadMoonPatrol("")
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config: Lives = %d, expected 4", cfg.Gameplay.Lives)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".moonpatrol", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "moonpatrol.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadMoonPatrol("")
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config: Lives = %d, expected 9", cfg.Gameplay.Lives)
	}
}

func TestLoadRejectsMalformedSearchFile(t *testing.T) {
	tests := []struct {
		name string
		dir  func(home, work string) string
	}{
		{"user", func(home, _ string) string { return filepath.Join(home, ".moonpatrol", "configs") }},
		{"local", func(_, work string) string { return filepath.Join(work, "configs") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			work := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(work)

			dir := tc.dir(home, work)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(dir, "moonpatrol.yaml")
			if err := os.WriteFile(path, []byte("gameplay:\n  speed_step: 0\n"), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadMoonPatrol("")
			if err == nil {
				t.Fatal("expected an error for a malformed config file")
			}
			if name := filepath.Join("configs", "moonpatrol.yaml"); !strings.Contains(err.Error(), name) {
				t.Errorf("error should name %s, got %v", name, err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultMoonPatrolConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMoonPatrolConfig()) {
		t.Error("round trip changed the config")
	}
}

func TestDifficultySpawnInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultMoonPatrolConfig().Gameplay)

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 1500 * time.Millisecond},
		{2, 1300 * time.Millisecond},
		{5, 1000 * time.Millisecond},
		{10, 500 * time.Millisecond},
		{50, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.level); got != tc.expected {
			t.Errorf("SpawnInterval(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestDifficultyScrollSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultMoonPatrolConfig().Gameplay)

	if got := d.ScrollSpeed(1); got != 5 {
		t.Errorf("ScrollSpeed(1) = %d, expected 5", got)
	}
	if got := d.ScrollSpeed(2); got != 6 {
		t.Errorf("ScrollSpeed(2) = %d, expected 6", got)
	}
	if got := d.ScrollSpeed(0); got != 5 {
		t.Errorf("ScrollSpeed(0) = %d, expected level 1 speed", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultMoonPatrolConfig()
	ApplyMoonPatrolPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Gameplay.ScrollSpeed != 4 {
		t.Errorf("easy preset: lives=%d speed=%d", cfg.Gameplay.Lives, cfg.Gameplay.ScrollSpeed)
	}

	ApplyMoonPatrolPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Gameplay.SpawnIntervalMS != 1200 {
		t.Errorf("hard preset: lives=%d interval=%d", cfg.Gameplay.Lives, cfg.Gameplay.SpawnIntervalMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset config should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
