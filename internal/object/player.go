package object

import (
	"github.com/tomz197/asteroids/internal/physics"
)

// Player is the player-controlled ship. It moves directly along its heading
// while thrusting; it carries no momentum of its own.
type Player struct {
	Circle
	Rotation float64 // Heading in degrees, 0 = reference "up" axis (0, 1)

	fireCooldown float64 // Seconds until the next shot is allowed
}

// NewPlayer creates a ship at pos with the given collision radius.
func NewPlayer(pos physics.Vector, radius float64) *Player {
	return &Player{
		Circle: NewCircle(pos, radius),
	}
}

// Nose returns the unit vector the ship is facing.
func (p *Player) Nose() physics.Vector {
	return physics.FromAngle(p.Rotation)
}

// Triangle returns the three ship vertices: nose first, then the two rear corners.
// Only used for drawing; collisions use the circle.
func (p *Player) Triangle() [3]physics.Vector {
	forward := p.Nose()
	right := physics.FromAngle(p.Rotation + 90).Mul(p.Radius / 1.5)
	back := p.Position.Sub(forward.Mul(p.Radius))
	return [3]physics.Vector{
		p.Position.Add(forward.Mul(p.Radius)),
		back.Sub(right),
		back.Add(right),
	}
}

// Rotate turns the ship by turnSpeed*dt degrees. Negative dt turns the other way.
func (p *Player) Rotate(turnSpeed, dt float64) {
	p.Rotation += turnSpeed * dt
}

// Thrust moves the ship along its heading by speed*dt. Negative dt moves backwards.
func (p *Player) Thrust(speed, dt float64) {
	p.Position = p.Position.Add(p.Nose().Mul(speed * dt))
}

// Fire creates a shot at the ship's position travelling along the nose.
func (p *Player) Fire(shotRadius, shotSpeed float64) *Shot {
	return NewShot(p.Position, p.Nose().Mul(shotSpeed), shotRadius)
}

// Update handles turning, thrust and shooting from the input snapshot.
func (p *Player) Update(ctx UpdateContext) bool {
	dt := ctx.Delta.Seconds()
	cfg := ctx.Config

	if ctx.Input.Left {
		p.Rotate(cfg.PlayerTurnSpeed, dt)
	}
	if ctx.Input.Right {
		p.Rotate(cfg.PlayerTurnSpeed, -dt)
	}
	if ctx.Input.Up {
		p.Thrust(cfg.PlayerSpeed, dt)
	}
	if ctx.Input.Down {
		p.Thrust(cfg.PlayerSpeed, -dt)
	}

	// Shooting
	p.fireCooldown -= dt
	if ctx.Input.Space && p.fireCooldown <= 0 && ctx.Spawner != nil {
		p.fireCooldown = cfg.PlayerShootCooldown
		ctx.Spawner.Spawn(p.Fire(cfg.ShotRadius, cfg.PlayerShootSpeed))
	}

	return false
}

// Draw renders the ship as a triangle pointing along its heading.
func (p *Player) Draw(s Surface) {
	tri := p.Triangle()
	s.DrawPolygon(tri[:])
}
