package object

import (
	"testing"
	"time"

	"github.com/tomz197/asteroids/internal/physics"
)

func TestPlayerNoseStartsUp(t *testing.T) {
	p := NewPlayer(physics.Vector{X: 0, Y: 0}, 20)
	nose := p.Nose()
	if !approx(nose.X, 0, tolerance) || !approx(nose.Y, 1, tolerance) {
		t.Errorf("Nose() = %v, want (0, 1)", nose)
	}
}

func TestPlayerTurning(t *testing.T) {
	ctx, _ := newTestContext(500*time.Millisecond, 1)

	p := NewPlayer(physics.Vector{}, 20)
	ctx.Input.Left = true
	p.Update(ctx)
	if !approx(p.Rotation, 150, tolerance) {
		t.Errorf("rotation after turning left = %v, want 150", p.Rotation)
	}

	ctx.Input.Left = false
	ctx.Input.Right = true
	p.Update(ctx)
	p.Update(ctx)
	if !approx(p.Rotation, -150, tolerance) {
		t.Errorf("rotation after turning right = %v, want -150", p.Rotation)
	}
}

func TestPlayerThrust(t *testing.T) {
	ctx, _ := newTestContext(time.Second, 1)
	start := physics.Vector{X: 640, Y: 360}

	p := NewPlayer(start, 20)
	p.Rotation = 90 // nose points along -X
	ctx.Input.Up = true
	p.Update(ctx)
	if !approx(p.Position.X, 440, 1e-6) || !approx(p.Position.Y, 360, 1e-6) {
		t.Errorf("position after forward thrust = %v, want (440, 360)", p.Position)
	}

	ctx.Input.Up = false
	ctx.Input.Down = true
	p.Update(ctx)
	if !approx(p.Position.X, start.X, 1e-6) || !approx(p.Position.Y, start.Y, 1e-6) {
		t.Errorf("backward thrust should undo forward thrust, got %v", p.Position)
	}
}

func TestPlayerFire(t *testing.T) {
	ctx, rec := newTestContext(100*time.Millisecond, 1)
	p := NewPlayer(physics.Vector{X: 10, Y: 20}, 20)
	p.Rotation = 180
	ctx.Input.Space = true

	p.Update(ctx)
	shots := rec.shots()
	if len(shots) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(shots))
	}
	s := shots[0]
	if s.Position != p.Position {
		t.Errorf("shot spawned at %v, want player position %v", s.Position, p.Position)
	}
	want := p.Nose().Mul(ctx.Config.PlayerShootSpeed)
	if !approx(s.Velocity.X, want.X, 1e-6) || !approx(s.Velocity.Y, want.Y, 1e-6) {
		t.Errorf("shot velocity = %v, want %v", s.Velocity, want)
	}
	if s.Radius != ctx.Config.ShotRadius {
		t.Errorf("shot radius = %v, want %v", s.Radius, ctx.Config.ShotRadius)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	ctx, rec := newTestContext(100*time.Millisecond, 1)
	p := NewPlayer(physics.Vector{}, 20)
	ctx.Input.Space = true

	// Cooldown is 0.3s: one shot on the first tick, the next one 0.3s later
	for i := 0; i < 5; i++ {
		p.Update(ctx)
	}
	if got := len(rec.shots()); got != 2 {
		t.Errorf("expected 2 shots over 0.5s with 0.3s cooldown, got %d", got)
	}
}

func TestPlayerTriangle(t *testing.T) {
	p := NewPlayer(physics.Vector{X: 100, Y: 100}, 30)
	tri := p.Triangle()

	if !approx(tri[0].X, 100, 1e-9) || !approx(tri[0].Y, 130, 1e-9) {
		t.Errorf("nose vertex = %v, want (100, 130)", tri[0])
	}
	for i, v := range tri[1:] {
		if !approx(v.Y, 70, 1e-9) {
			t.Errorf("rear vertex %d = %v, want y=70", i, v)
		}
	}

	surface := &surfaceRecorder{}
	p.Draw(surface)
	if len(surface.polygons) != 1 || len(surface.polygons[0]) != 3 {
		t.Errorf("expected a single triangle to be drawn, got %v", surface.polygons)
	}
}
