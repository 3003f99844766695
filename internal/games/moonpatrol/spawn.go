package moonpatrol

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/moonpatrol/internal/config"
)

// SpawnScheduler emits a new obstacle every interval of simulated time.
// The timer is an accumulator advanced once per tick, not a real clock.
type SpawnScheduler struct {
	rng      *rand.Rand
	interval time.Duration
	elapsed  time.Duration
	world    config.MoonPatrolWorld
	cfg      config.MoonPatrolObstacles
}

// NewSpawnScheduler creates a scheduler with the given RNG seed and initial interval.
func NewSpawnScheduler(seed int64, interval time.Duration, world config.MoonPatrolWorld, cfg config.MoonPatrolObstacles) *SpawnScheduler {
	return &SpawnScheduler{
		rng:      rand.New(rand.NewSource(seed)),
		interval: interval,
		world:    world,
		cfg:      cfg,
	}
}

// Interval returns the current spawn interval.
func (s *SpawnScheduler) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the spawn interval and restarts the timer,
// the way re-arming a periodic timer does.
func (s *SpawnScheduler) SetInterval(d time.Duration) {
	s.interval = d
	s.elapsed = 0
}

// Tick advances the timer by elapsed and returns a freshly generated
// obstacle when the interval has been reached. At most one obstacle is
// produced per call; any overshoot carries into the next period.
func (s *SpawnScheduler) Tick(elapsed time.Duration) (Obstacle, bool) {
	if s.interval <= 0 {
		return Obstacle{}, false
	}
	s.elapsed += elapsed
	if s.elapsed < s.interval {
		return Obstacle{}, false
	}
	s.elapsed -= s.interval
	return s.spawn(), true
}

// spawn creates a random obstacle at the right screen edge.
func (s *SpawnScheduler) spawn() Obstacle {
	if s.rng.Intn(2) == 0 {
		size := s.cfg.SmallBoulder
		if s.rng.Float64() < s.cfg.LargeChance {
			size = s.cfg.LargeBoulder
		}
		return Obstacle{
			Kind:   KindBoulder,
			X:      s.world.Width,
			Y:      s.world.GroundY - size.Height,
			Width:  size.Width,
			Height: size.Height,
			Hits:   size.Hits,
		}
	}

	return Obstacle{
		Kind:   KindCrater,
		X:      s.world.Width,
		Y:      s.world.GroundY,
		Width:  s.between(s.cfg.CraterMinWidth, s.cfg.CraterMaxWidth),
		Height: s.between(s.cfg.CraterMinDepth, s.cfg.CraterMaxDepth),
	}
}

// between returns a uniform integer in [lo, hi].
func (s *SpawnScheduler) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
