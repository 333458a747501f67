package object

import (
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/physics"
)

// fieldEdge describes one side of the playfield: the inward direction and
// where along that side an asteroid enters, just outside the visible area.
type fieldEdge struct {
	inward   physics.Vector
	position func(cfg *config.Config, t float64) physics.Vector
}

var fieldEdges = [4]fieldEdge{
	{ // Left
		inward: physics.Vector{X: 1, Y: 0},
		position: func(cfg *config.Config, t float64) physics.Vector {
			return physics.Vector{X: -cfg.AsteroidMaxRadius(), Y: t * cfg.ScreenHeight}
		},
	},
	{ // Right
		inward: physics.Vector{X: -1, Y: 0},
		position: func(cfg *config.Config, t float64) physics.Vector {
			return physics.Vector{X: cfg.ScreenWidth + cfg.AsteroidMaxRadius(), Y: t * cfg.ScreenHeight}
		},
	},
	{ // Top
		inward: physics.Vector{X: 0, Y: 1},
		position: func(cfg *config.Config, t float64) physics.Vector {
			return physics.Vector{X: t * cfg.ScreenWidth, Y: -cfg.AsteroidMaxRadius()}
		},
	},
	{ // Bottom
		inward: physics.Vector{X: 0, Y: -1},
		position: func(cfg *config.Config, t float64) physics.Vector {
			return physics.Vector{X: t * cfg.ScreenWidth, Y: cfg.ScreenHeight + cfg.AsteroidMaxRadius()}
		},
	},
}

// AsteroidField periodically spawns asteroids just outside a random edge of
// the playfield, heading inwards.
type AsteroidField struct {
	remaining float64 // Seconds until the next spawn
}

// NewAsteroidField creates a field whose first spawn happens after one full interval.
func NewAsteroidField(interval float64) *AsteroidField {
	return &AsteroidField{remaining: interval}
}

// Update counts down and spawns one asteroid each time the interval elapses.
// Overshoot carries into the next interval; at most one asteroid spawns per update.
func (f *AsteroidField) Update(ctx UpdateContext) bool {
	f.remaining -= ctx.Delta.Seconds()
	if f.remaining > 0 {
		return false
	}
	f.remaining += ctx.Config.AsteroidSpawnRate
	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(f.newAsteroid(ctx))
	}
	return false
}

// newAsteroid picks an edge, an entry point along it, an inward heading
// spread by up to the configured angle, a speed and a size tier.
func (f *AsteroidField) newAsteroid(ctx UpdateContext) *Asteroid {
	cfg := ctx.Config
	rng := ctx.Rand

	edge := fieldEdges[rng.IntN(len(fieldEdges))]
	speed := cfg.AsteroidMinSpeed + rng.Float64()*(cfg.AsteroidMaxSpeed-cfg.AsteroidMinSpeed)
	spread := (rng.Float64()*2 - 1) * cfg.AsteroidSpawnSpread
	vel := physics.Rotate(edge.inward.Mul(speed), spread)
	pos := edge.position(cfg, rng.Float64())
	kind := 1 + rng.IntN(cfg.AsteroidKinds)

	return NewAsteroid(pos, vel, cfg.AsteroidMinRadius*float64(kind))
}

// Draw is a no-op; the field is not visible.
func (f *AsteroidField) Draw(_ Surface) {}
