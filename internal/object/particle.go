package object

import (
	"math"
	"sync"

	"github.com/tomz197/asteroids/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived debris fragment. It never collides with anything.
type Particle struct {
	Position    physics.Vector
	Velocity    physics.Vector
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity kept per 1/60 s (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vector, lifetime float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.Position = pos
	p.Velocity = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion bursts count particles outwards from pos.
// speed and lifetime are the mean values; each particle varies around them.
func SpawnExplosion(pos physics.Vector, count int, speed, lifetime float64, ctx UpdateContext) {
	if ctx.Spawner == nil || ctx.Rand == nil {
		return
	}
	rng := ctx.Rand

	for i := 0; i < count; i++ {
		dir := physics.FromAngle(rng.Float64() * 360)
		// Speed varies 50% to 150%, lifetime 50% to 100%
		spd := speed * (0.5 + rng.Float64())
		life := lifetime * (0.5 + rng.Float64()*0.5)

		ctx.Spawner.Spawn(NewParticle(pos, dir.Mul(spd), life))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	// Normalize drag to ~60fps
	p.Velocity = p.Velocity.Mul(math.Pow(p.Drag, dt*60))
	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	return false
}

// Draw renders the particle as a single point until it has mostly faded.
func (p *Particle) Draw(s Surface) {
	if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return
	}
	s.DrawPoint(p.Position)
}
