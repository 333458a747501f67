package loop

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

// Status is the simulation outcome after a tick.
type Status int

const (
	StatusRunning  Status = iota // Simulation continues
	StatusGameOver               // Player destroyed; terminal state
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// World owns the live entity sets and advances them one tick at a time.
// Entities never touch the sets directly: they spawn through World.Spawn and
// are removed by the world once marked destroyed or expired.
type World struct {
	Config    config.Config
	Player    *object.Player // nil once destroyed
	Asteroids []*object.Asteroid
	Shots     []*object.Shot
	Particles []*object.Particle

	field  *object.AsteroidField
	rng    *rand.Rand
	logger *log.Logger
	status Status

	// Objects to add after the current phase
	pendingAsteroids []*object.Asteroid
	pendingShots     []*object.Shot
	pendingParticles []*object.Particle

	// Broad phase for asteroid/shot tests, reused each tick
	shotGrid     *physics.SpatialGrid
	gridCellSize float64
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sets the logger for spawn, split and game-over events (debug level).
func WithLogger(l *log.Logger) WorldOption {
	return func(w *World) {
		w.logger = l
	}
}

// WithRand injects the random source used by the spawner and splits.
func WithRand(r *rand.Rand) WorldOption {
	return func(w *World) {
		w.rng = r
	}
}

// NewRand returns a PCG-backed random source. A zero seed picks a time-based one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewWorld creates a world with the player at the center of the screen and
// an asteroid field that starts counting down immediately.
func NewWorld(cfg config.Config, opts ...WorldOption) *World {
	w := &World{
		Config: cfg,
		field:  object.NewAsteroidField(cfg.AsteroidSpawnRate),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = NewRand(cfg.Seed)
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	w.gridCellSize = cfg.AsteroidMaxRadius() + cfg.ShotRadius
	w.shotGrid = physics.NewSpatialGrid(cfg.ScreenWidth, cfg.ScreenHeight, w.gridCellSize)

	center := physics.Vector{X: cfg.ScreenWidth / 2, Y: cfg.ScreenHeight / 2}
	w.Player = object.NewPlayer(center, cfg.PlayerRadius)
	return w
}

// Status returns the current simulation status.
func (w *World) Status() Status {
	return w.status
}

// AddObject inserts an object into its live set immediately.
// Use it for setup outside Tick; during a tick objects go through Spawn.
func (w *World) AddObject(obj object.Object) {
	switch o := obj.(type) {
	case *object.Asteroid:
		w.Asteroids = append(w.Asteroids, o)
	case *object.Shot:
		w.Shots = append(w.Shots, o)
	case *object.Particle:
		w.Particles = append(w.Particles, o)
	case *object.Player:
		w.Player = o
	default:
		panic(fmt.Sprintf("loop: cannot add object of type %T", obj))
	}
}

// Spawn queues an object to be added after the current phase.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Asteroid:
		w.pendingAsteroids = append(w.pendingAsteroids, o)
	case *object.Shot:
		w.pendingShots = append(w.pendingShots, o)
	case *object.Particle:
		w.pendingParticles = append(w.pendingParticles, o)
	default:
		panic(fmt.Sprintf("loop: cannot spawn object of type %T", obj))
	}
}

// FlushSpawned adds all queued objects to the live sets and clears the queues.
func (w *World) FlushSpawned() {
	w.Asteroids = append(w.Asteroids, w.pendingAsteroids...)
	w.Shots = append(w.Shots, w.pendingShots...)
	w.Particles = append(w.Particles, w.pendingParticles...)

	clear(w.pendingAsteroids)
	clear(w.pendingShots)
	clear(w.pendingParticles)
	w.pendingAsteroids = w.pendingAsteroids[:0]
	w.pendingShots = w.pendingShots[:0]
	w.pendingParticles = w.pendingParticles[:0]
}

// updateContext creates an UpdateContext for one tick.
func (w *World) updateContext(dt time.Duration, in object.Input) object.UpdateContext {
	return object.UpdateContext{
		Delta:   dt,
		Input:   in,
		Config:  &w.Config,
		Rand:    w.rng,
		Spawner: w,
	}
}

// Draw renders every live object onto the surface.
func (w *World) Draw(s object.Surface) {
	for _, p := range w.Particles {
		p.Draw(s)
	}
	for _, a := range w.Asteroids {
		a.Draw(s)
	}
	for _, shot := range w.Shots {
		shot.Draw(s)
	}
	if w.Player != nil {
		w.Player.Draw(s)
	}
}
