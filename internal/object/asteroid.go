package object

import (
	"github.com/tomz197/asteroids/internal/physics"
)

// Asteroid is a drifting space rock. It moves in a straight line with no
// drag and no spin; a hit splits it into two smaller rocks or destroys it.
type Asteroid struct {
	Circle
	destroyed bool
}

// NewAsteroid creates an asteroid at pos with velocity vel.
// It panics if radius is not positive.
func NewAsteroid(pos, vel physics.Vector, radius float64) *Asteroid {
	a := &Asteroid{Circle: NewCircle(pos, radius)}
	a.Velocity = vel
	return a
}

// Update moves the asteroid. Returns true once it has drifted more than two
// maximum radii past the playfield, well beyond where new asteroids spawn.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.Move(ctx.Delta)
	cfg := ctx.Config
	return a.OutsideField(cfg.ScreenWidth, cfg.ScreenHeight, 2*cfg.AsteroidMaxRadius())
}

// Split destroys the asteroid. Unless it is already at the minimum radius,
// two children are spawned at its position, shrunk by the minimum radius, with
// the parent velocity rotated by a random angle in opposite directions and
// sped up by the split speed factor.
//
// Splitting an asteroid twice is a programming error and panics.
func (a *Asteroid) Split(ctx UpdateContext) {
	if a.destroyed {
		panic("object: split called on a destroyed asteroid")
	}
	a.destroyed = true

	cfg := ctx.Config
	SpawnExplosion(a.Position, int(a.Radius/cfg.AsteroidMinRadius)*4, 60, 0.5, ctx)

	if a.Radius <= cfg.AsteroidMinRadius {
		return
	}

	angle := cfg.SplitMinAngle + ctx.Rand.Float64()*(cfg.SplitMaxAngle-cfg.SplitMinAngle)
	radius := a.Radius - cfg.AsteroidMinRadius
	for _, dir := range []float64{angle, -angle} {
		vel := physics.Rotate(a.Velocity, dir).Mul(cfg.SplitSpeedFactor)
		ctx.Spawner.Spawn(NewAsteroid(a.Position, vel, radius))
	}
}

// MarkDestroyed marks the asteroid for removal without splitting (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}

// Draw renders the asteroid outline.
func (a *Asteroid) Draw(s Surface) {
	s.DrawCircle(a.Position, a.Radius)
}
