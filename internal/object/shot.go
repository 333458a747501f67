package object

import "github.com/tomz197/asteroids/internal/physics"

// Shot is a projectile fired by the player. It flies in a straight line
// until it hits an asteroid or leaves the playfield.
type Shot struct {
	Circle
	destroyed bool
}

// NewShot creates a shot at pos travelling with velocity vel.
func NewShot(pos, vel physics.Vector, radius float64) *Shot {
	s := &Shot{Circle: NewCircle(pos, radius)}
	s.Velocity = vel
	return s
}

// MarkDestroyed marks the shot for removal.
func (s *Shot) MarkDestroyed() {
	s.destroyed = true
}

// IsDestroyed returns true if the shot is marked for destruction.
func (s *Shot) IsDestroyed() bool {
	return s.destroyed
}

// Update moves the shot. Returns true once it is fully outside the playfield.
func (s *Shot) Update(ctx UpdateContext) bool {
	s.Move(ctx.Delta)
	return s.OutsideField(ctx.Config.ScreenWidth, ctx.Config.ScreenHeight, 0)
}

// Draw renders the shot as a small circle.
func (s *Shot) Draw(surface Surface) {
	surface.DrawCircle(s.Position, s.Radius)
}
