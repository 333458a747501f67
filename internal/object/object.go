package object

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
// Spawned objects join the live sets only after the current phase completes.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Config  *config.Config
	Rand    *rand.Rand
	Spawner Spawner
}

// Surface is the host-provided render sink. Coordinates are world units.
type Surface interface {
	DrawCircle(center physics.Vector, radius float64)
	DrawPolygon(points []physics.Vector)
	DrawPoint(p physics.Vector)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by ctx.Delta. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw renders the object onto the surface.
	Draw(s Surface)
}

// Collider is anything with a circular collision boundary.
type Collider interface {
	Bounds() Circle
}

// Circle is the shape shared by every collidable entity: a center that moves
// with a constant velocity and a fixed radius.
type Circle struct {
	Position physics.Vector
	Velocity physics.Vector // Units per second
	Radius   float64
}

// NewCircle creates a circle at pos. It panics if radius is not positive.
func NewCircle(pos physics.Vector, radius float64) Circle {
	if radius <= 0 {
		panic(fmt.Sprintf("object: circle radius must be positive, got %v", radius))
	}
	return Circle{Position: pos, Radius: radius}
}

// Move integrates position by velocity over dt.
func (c *Circle) Move(dt time.Duration) {
	c.Position = c.Position.Add(c.Velocity.Mul(dt.Seconds()))
}

// Bounds returns the circle itself (implements Collider).
func (c Circle) Bounds() Circle {
	return c
}

// CollidesWith reports whether the two circles touch or overlap.
func (c Circle) CollidesWith(other Collider) bool {
	o := other.Bounds()
	return physics.CirclesOverlap(c.Position, c.Radius, o.Position, o.Radius)
}

// OutsideField reports whether the circle lies entirely outside the
// width x height playfield grown by margin on every side.
func (c Circle) OutsideField(width, height, margin float64) bool {
	r := c.Radius + margin
	p := c.Position
	return p.X+r < 0 || p.X-r > width || p.Y+r < 0 || p.Y-r > height
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the current tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}
