package moonpatrol

import (
	"time"

	"github.com/vovakirdan/moonpatrol/internal/config"
	"github.com/vovakirdan/moonpatrol/internal/core"
)

// HUD placement in world units.
const (
	hudX       = 10
	hudY       = 10
	hudSpacing = 20
)

// Input is the sampled control state for one tick.
type Input struct {
	Jump bool
	Fire bool
}

// GameState is one run of the game: the vehicle, everything on screen and
// the run counters. It is advanced by Tick and never shared.
type GameState struct {
	cfg        config.MoonPatrolConfig
	difficulty *config.DifficultyManager
	spawner    *SpawnScheduler
	tickDur    time.Duration

	vehicle     Vehicle
	obstacles   []Obstacle
	projectiles []Projectile
	cooldown    int

	score         int
	lives         int
	level         int
	distance      int
	levelProgress int
	scrollSpeed   int

	terminal bool
	sounds   []Sound
}

// NewGameState creates a fresh run. The seed drives obstacle generation and
// tickDur is the simulated time that passes per Tick.
func NewGameState(cfg config.MoonPatrolConfig, seed int64, tickDur time.Duration) *GameState {
	diff := config.NewDifficultyManager(cfg.Gameplay)
	s := &GameState{
		cfg:         cfg,
		difficulty:  diff,
		spawner:     NewSpawnScheduler(seed, diff.SpawnInterval(1), cfg.World, cfg.Obstacles),
		tickDur:     tickDur,
		obstacles:   make([]Obstacle, 0, 8),
		projectiles: make([]Projectile, 0, 8),
		lives:       cfg.Gameplay.Lives,
		level:       1,
		scrollSpeed: diff.ScrollSpeed(1),
	}
	s.vehicle = Vehicle{
		X:      cfg.Vehicle.X,
		Width:  cfg.Vehicle.Width,
		Height: cfg.Vehicle.Height,
	}
	s.resetVehicle()
	return s
}

// restY is the vehicle's y when its wheels touch the ground.
func (s *GameState) restY() int {
	return s.cfg.World.GroundY - s.cfg.Vehicle.Height
}

func (s *GameState) resetVehicle() {
	s.vehicle.Y = s.restY()
	s.vehicle.VelY = 0
	s.vehicle.Airborne = false
}

// Terminal reports whether the run has ended.
func (s *GameState) Terminal() bool {
	return s.terminal
}

// Stats returns a snapshot of the run counters.
func (s *GameState) Stats() Stats {
	return Stats{
		Score:         s.score,
		Lives:         s.lives,
		Level:         s.level,
		Distance:      s.distance,
		LevelProgress: s.levelProgress,
		ScrollSpeed:   s.scrollSpeed,
		SpawnInterval: int(s.spawner.Interval() / time.Millisecond),
	}
}

// Tick advances the run by one fixed step and returns what to draw and play.
// Once the run is terminal Tick no longer changes anything.
func (s *GameState) Tick(in Input) Frame {
	s.sounds = s.sounds[:0]
	if s.terminal {
		return s.Frame()
	}

	if o, ok := s.spawner.Tick(s.tickDur); ok {
		s.obstacles = append(s.obstacles, o)
	}

	s.handleInput(in)
	s.applyPhysics()
	s.advance()
	s.resolveProjectileHits()

	if s.vehicleCollides() {
		s.crash()
	}

	s.updateDistance()
	s.updateLevel()

	return s.Frame()
}

// handleInput applies jump and fire. The cooldown is decremented before the
// fire check, so right after a shot it reads exactly the configured value.
func (s *GameState) handleInput(in Input) {
	if in.Jump && !s.vehicle.Airborne {
		s.vehicle.VelY = s.cfg.Vehicle.JumpImpulse
		s.vehicle.Airborne = true
		s.emit(SoundJump)
	}

	if s.cooldown > 0 {
		s.cooldown--
	}
	if in.Fire && s.cooldown == 0 {
		s.projectiles = append(s.projectiles, Projectile{
			X:      s.vehicle.X + s.vehicle.Width,
			Y:      s.vehicle.Y + s.vehicle.Height/2,
			Width:  s.cfg.Weapon.ProjectileWidth,
			Height: s.cfg.Weapon.ProjectileHeight,
		})
		s.cooldown = s.cfg.Weapon.Cooldown
		s.emit(SoundFire)
	}
}

// applyPhysics integrates gravity and clamps the vehicle to the ground.
func (s *GameState) applyPhysics() {
	s.vehicle.VelY += s.cfg.Vehicle.Gravity
	s.vehicle.Y += s.vehicle.VelY
	if s.vehicle.Y >= s.restY() {
		s.resetVehicle()
	}
}

// advance scrolls obstacles, moves projectiles and drops whatever left the screen.
func (s *GameState) advance() {
	obstacles := make([]Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		o.X -= s.scrollSpeed
		if !o.OffScreen() {
			obstacles = append(obstacles, o)
		}
	}
	s.obstacles = obstacles

	projectiles := make([]Projectile, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		p.X += s.cfg.Weapon.ProjectileSpeed
		if p.X < s.cfg.World.Width {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles
}

// resolveProjectileHits matches every projectile, in firing order, against
// the first boulder it overlaps. Each projectile hits at most one boulder.
func (s *GameState) resolveProjectileHits() {
	projectiles := make([]Projectile, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if !s.hitFirstBoulder(p.Rect()) {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles
}

// hitFirstBoulder damages the first boulder overlapping r and reports whether
// one was hit. A boulder whose hits reach zero is removed and scored.
func (s *GameState) hitFirstBoulder(r core.Rect) bool {
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Kind != KindBoulder || !r.Intersects(o.Rect()) {
			continue
		}
		o.Hits--
		if o.Hits <= 0 {
			s.obstacles = append(s.obstacles[:i:i], s.obstacles[i+1:]...)
			s.score += s.cfg.Gameplay.BoulderBonus
		}
		return true
	}
	return false
}

// vehicleCollides reports whether the vehicle hit an obstacle this tick.
// Only the first colliding obstacle matters.
func (s *GameState) vehicleCollides() bool {
	vr := s.vehicle.Rect()
	for _, o := range s.obstacles {
		switch o.Kind {
		case KindCrater:
			if !s.vehicle.Airborne && vr.OverlapsX(o.Rect()) && s.vehicle.Bottom() >= s.cfg.World.GroundY {
				return true
			}
		case KindBoulder:
			if vr.Intersects(o.Rect()) {
				return true
			}
		}
	}
	return false
}

// crash costs a life and clears the board.
func (s *GameState) crash() {
	s.emit(SoundCrash)
	s.lives--
	s.emit(SoundLifeLost)

	s.resetVehicle()
	s.obstacles = s.obstacles[:0]
	s.projectiles = s.projectiles[:0]

	if s.lives <= 0 {
		s.lives = 0
		s.terminal = true
		s.emit(SoundGameOver)
	}
}

// updateDistance advances the odometer and awards a point for every
// PointDistance multiple crossed.
func (s *GameState) updateDistance() {
	step := s.cfg.Gameplay.PointDistance
	before := s.distance / step
	s.distance += s.scrollSpeed
	s.score += s.distance/step - before
}

// updateLevel moves to the next level once enough distance was covered.
func (s *GameState) updateLevel() {
	s.levelProgress += s.scrollSpeed
	if s.levelProgress < s.cfg.Gameplay.LevelDuration {
		return
	}
	s.level++
	s.levelProgress = 0
	s.scrollSpeed = s.difficulty.ScrollSpeed(s.level)
	s.spawner.SetInterval(s.difficulty.SpawnInterval(s.level))
	s.emit(SoundLevelUp)
}

func (s *GameState) emit(snd Sound) {
	s.sounds = append(s.sounds, snd)
}

// Frame builds the render intents for the current state, back to front:
// ground, obstacles, vehicle, projectiles, HUD.
func (s *GameState) Frame() Frame {
	world := s.cfg.World
	draws := make([]DrawIntent, 0, 5+len(s.obstacles)+len(s.projectiles))

	draws = append(draws, DrawIntent{
		Kind: DrawGround,
		Rect: core.NewRect(0, world.GroundY, world.Width, world.Height-world.GroundY),
	})

	for _, o := range s.obstacles {
		switch o.Kind {
		case KindBoulder:
			draws = append(draws, DrawIntent{Kind: DrawBoulder, Rect: o.Rect(), Hits: o.Hits})
		case KindCrater:
			draws = append(draws, DrawIntent{Kind: DrawCrater, Rect: o.Rect()})
		}
	}

	draws = append(draws, DrawIntent{Kind: DrawVehicle, Rect: s.vehicle.Rect()})

	for _, p := range s.projectiles {
		draws = append(draws, DrawIntent{Kind: DrawProjectile, Rect: p.Rect()})
	}

	stats := s.Stats()
	for i, line := range hudLines(stats) {
		draws = append(draws, DrawIntent{
			Kind: DrawText,
			Rect: core.NewRect(hudX, hudY+i*hudSpacing, 0, 0),
			Text: line,
		})
	}

	sounds := make([]Sound, len(s.sounds))
	copy(sounds, s.sounds)

	return Frame{
		Draws:    draws,
		Sounds:   sounds,
		Stats:    stats,
		Terminal: s.terminal,
	}
}
