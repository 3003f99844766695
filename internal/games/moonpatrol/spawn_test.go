package moonpatrol

import (
	"testing"
	"time"

	"github.com/vovakirdan/moonpatrol/internal/config"
)

func newTestScheduler(seed int64, interval time.Duration) *SpawnScheduler {
	cfg := config.DefaultMoonPatrolConfig()
	return NewSpawnScheduler(seed, interval, cfg.World, cfg.Obstacles)
}

func TestSpawnSchedulerInterval(t *testing.T) {
	s := newTestScheduler(1, 1500*time.Millisecond)

	for i := 1; i < 15; i++ {
		if _, ok := s.Tick(100 * time.Millisecond); ok {
			t.Fatalf("spawned after %d00ms, before the interval elapsed", i)
		}
	}
	if _, ok := s.Tick(100 * time.Millisecond); !ok {
		t.Fatal("expected a spawn once 1500ms elapsed")
	}

	// Next period starts from zero
	for i := 1; i < 15; i++ {
		if _, ok := s.Tick(100 * time.Millisecond); ok {
			t.Fatalf("second period spawned early at tick %d", i)
		}
	}
	if _, ok := s.Tick(100 * time.Millisecond); !ok {
		t.Error("expected the second spawn after another 1500ms")
	}
}

func TestSpawnSchedulerOneObstaclePerTick(t *testing.T) {
	s := newTestScheduler(1, 100*time.Millisecond)

	if _, ok := s.Tick(350 * time.Millisecond); !ok {
		t.Fatal("expected a spawn")
	}
	// Overshoot carries over and is drained one obstacle per tick
	if _, ok := s.Tick(0); !ok {
		t.Error("expected carried-over spawn")
	}
	if _, ok := s.Tick(0); !ok {
		t.Error("expected carried-over spawn")
	}
	if _, ok := s.Tick(0); ok {
		t.Error("carry-over should be exhausted")
	}
}

func TestSpawnSchedulerSetIntervalRestartsTimer(t *testing.T) {
	s := newTestScheduler(1, 1000*time.Millisecond)

	s.Tick(900 * time.Millisecond)
	s.SetInterval(500 * time.Millisecond)

	if s.Interval() != 500*time.Millisecond {
		t.Errorf("Interval() = %v", s.Interval())
	}
	if _, ok := s.Tick(400 * time.Millisecond); ok {
		t.Error("time accumulated before SetInterval should be discarded")
	}
	if _, ok := s.Tick(100 * time.Millisecond); !ok {
		t.Error("expected a spawn 500ms after SetInterval")
	}
}

func TestSpawnSchedulerZeroInterval(t *testing.T) {
	s := newTestScheduler(1, 0)
	for i := 0; i < 10; i++ {
		if _, ok := s.Tick(time.Second); ok {
			t.Fatal("zero interval should never spawn")
		}
	}
}

func TestSpawnSchedulerDeterminism(t *testing.T) {
	a := newTestScheduler(99, time.Millisecond)
	b := newTestScheduler(99, time.Millisecond)

	for i := 0; i < 500; i++ {
		oa, _ := a.Tick(time.Millisecond)
		ob, _ := b.Tick(time.Millisecond)
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestSpawnedObstacleShapes(t *testing.T) {
	cfg := config.DefaultMoonPatrolConfig()
	s := newTestScheduler(2024, time.Millisecond)

	const n = 10000
	var boulders, large, craters int
	for i := 0; i < n; i++ {
		o, ok := s.Tick(time.Millisecond)
		if !ok {
			t.Fatal("expected a spawn every tick")
		}
		if o.X != cfg.World.Width {
			t.Fatalf("obstacle x = %d, expected the right edge", o.X)
		}

		switch o.Kind {
		case KindBoulder:
			boulders++
			if o.Y+o.Height != cfg.World.GroundY {
				t.Fatalf("boulder should rest on the ground: %+v", o)
			}
			switch {
			case o.Width == 20 && o.Height == 20 && o.Hits == 1:
			case o.Width == 40 && o.Height == 40 && o.Hits == 2:
				large++
			default:
				t.Fatalf("unexpected boulder %+v", o)
			}
		case KindCrater:
			craters++
			if o.Y != cfg.World.GroundY {
				t.Fatalf("crater top should be on the ground line: %+v", o)
			}
			if o.Width < 40 || o.Width > 80 {
				t.Fatalf("crater width %d out of range", o.Width)
			}
			if o.Height < 20 || o.Height > 40 {
				t.Fatalf("crater depth %d out of range", o.Height)
			}
		default:
			t.Fatalf("unknown obstacle kind %v", o.Kind)
		}
	}

	if ratio := float64(boulders) / n; ratio < 0.45 || ratio > 0.55 {
		t.Errorf("boulder share = %.3f, expected about half", ratio)
	}
	if ratio := float64(large) / float64(boulders); ratio < 0.17 || ratio > 0.23 {
		t.Errorf("large boulder share = %.3f, expected about 0.2", ratio)
	}
	if boulders+craters != n {
		t.Errorf("counted %d obstacles, expected %d", boulders+craters, n)
	}
}

func TestCraterTriangle(t *testing.T) {
	o := Obstacle{Kind: KindCrater, X: 100, Y: 360, Width: 60, Height: 30}
	tri := o.CraterTriangle()

	expected := [3][2]float64{{100, 360}, {130, 390}, {160, 360}}
	if tri != expected {
		t.Errorf("CraterTriangle() = %v, expected %v", tri, expected)
	}
}

func TestObstacleKindString(t *testing.T) {
	if KindBoulder.String() != "boulder" || KindCrater.String() != "crater" {
		t.Errorf("unexpected names %q %q", KindBoulder, KindCrater)
	}
}
