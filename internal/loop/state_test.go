package loop

import (
	"slices"
	"testing"
	"time"

	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

// newQuietWorld returns a world whose asteroid field will not fire during a test.
func newQuietWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.Default()
	cfg.AsteroidSpawnRate = 1000
	return NewWorld(cfg, WithRand(NewRand(1)))
}

func vec(x, y float64) physics.Vector {
	return physics.Vector{X: x, Y: y}
}

type countingSurface struct {
	circles  int
	polygons int
	points   int
}

func (s *countingSurface) DrawCircle(physics.Vector, float64) { s.circles++ }
func (s *countingSurface) DrawPolygon([]physics.Vector) { s.polygons++ }
func (s *countingSurface) DrawPoint(physics.Vector) { s.points++ }

func TestNewWorldPlacesPlayerAtCenter(t *testing.T) {
	w := NewWorld(config.Default(), WithRand(NewRand(1)))

	if w.Player == nil {
		t.Fatal("expected a player")
	}
	if got := w.Player.Position; got != vec(640, 360) {
		t.Errorf("player position = %v, want (640, 360)", got)
	}
	if w.Player.Radius != 20 {
		t.Errorf("player radius = %v, want 20", w.Player.Radius)
	}
	if w.Status() != StatusRunning {
		t.Errorf("status = %v, want running", w.Status())
	}
}

func TestPlayerHitEndsGame(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(w.Player.Position, vec(0, 0), 1))

	// A shot already sitting on another asteroid must not be resolved this tick.
	target := object.NewAsteroid(vec(100, 100), vec(0, 0), 40)
	w.AddObject(target)
	w.AddObject(object.NewShot(vec(100, 100), vec(0, 0), 5))

	if got := w.Tick(16*time.Millisecond, input.Input{}); got != StatusGameOver {
		t.Fatalf("Tick() = %v, want game over", got)
	}
	if w.Player != nil {
		t.Error("player should be removed after game over")
	}
	if len(w.Asteroids) != 2 || target.IsDestroyed() {
		t.Errorf("asteroids changed after game over: %d live, target destroyed=%v", len(w.Asteroids), target.IsDestroyed())
	}
	if len(w.Shots) != 1 || w.Shots[0].IsDestroyed() {
		t.Error("shot should survive the tick that ended the game")
	}
	if len(w.Particles) == 0 {
		t.Error("expected death debris")
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	w := newQuietWorld(t)
	a := object.NewAsteroid(w.Player.Position, vec(50, 0), 30)
	w.AddObject(a)

	if got := w.Tick(0, input.Input{}); got != StatusGameOver {
		t.Fatalf("Tick() = %v, want game over", got)
	}
	pos := a.Position
	particles := len(w.Particles)

	if got := w.Tick(time.Second, input.Input{Space: true}); got != StatusGameOver {
		t.Fatalf("second Tick() = %v, want game over", got)
	}
	if a.Position != pos {
		t.Errorf("asteroid moved after game over: %v -> %v", pos, a.Position)
	}
	if len(w.Particles) != particles {
		t.Errorf("particles changed after game over: %d -> %d", particles, len(w.Particles))
	}
}

func TestShotSplitsLargeAsteroid(t *testing.T) {
	w := newQuietWorld(t)
	parent := object.NewAsteroid(vec(100, 100), vec(0, -50), 40)
	shot := object.NewShot(vec(100, 100), vec(0, 0), 5)
	w.AddObject(parent)
	w.AddObject(shot)

	if got := w.Tick(0, input.Input{}); got != StatusRunning {
		t.Fatalf("Tick() = %v, want running", got)
	}

	if len(w.Asteroids) != 2 {
		t.Fatalf("got %d asteroids, want 2", len(w.Asteroids))
	}
	if slices.Contains(w.Asteroids, parent) {
		t.Error("parent asteroid still live")
	}
	for i, a := range w.Asteroids {
		if a.Radius != 20 {
			t.Errorf("child %d radius = %v, want 20", i, a.Radius)
		}
		if a.Position != parent.Position {
			t.Errorf("child %d position = %v, want %v", i, a.Position, parent.Position)
		}
	}
	if len(w.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(w.Shots))
	}
}

func TestShotDestroysSmallestAsteroid(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(100, 100), vec(10, 0), 20))
	w.AddObject(object.NewShot(vec(110, 100), vec(0, 0), 5))

	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 0 {
		t.Errorf("got %d asteroids, want 0", len(w.Asteroids))
	}
	if len(w.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(w.Shots))
	}
}

func TestShotIsConsumedByOneAsteroid(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(100, 100), vec(0, 0), 20))
	w.AddObject(object.NewAsteroid(vec(110, 100), vec(0, 0), 20))
	w.AddObject(object.NewShot(vec(105, 100), vec(0, 0), 5))

	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 1 {
		t.Errorf("got %d asteroids, want 1", len(w.Asteroids))
	}
	if len(w.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(w.Shots))
	}
}

func TestChildrenAreNotHitInTheirSpawnTick(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(200, 200), vec(0, 0), 40))
	w.AddObject(object.NewShot(vec(200, 200), vec(0, 0), 5))
	w.AddObject(object.NewShot(vec(200, 200), vec(0, 0), 5))

	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 2 {
		t.Fatalf("after first tick: %d asteroids, want 2", len(w.Asteroids))
	}
	if len(w.Shots) != 1 {
		t.Fatalf("after first tick: %d shots, want 1", len(w.Shots))
	}

	// The surviving shot now overlaps both children; it may only take out one.
	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 1 {
		t.Errorf("after second tick: %d asteroids, want 1", len(w.Asteroids))
	}
	if len(w.Shots) != 0 {
		t.Errorf("after second tick: %d shots, want 0", len(w.Shots))
	}
}

func TestManyHitsInOneTick(t *testing.T) {
	w := newQuietWorld(t)
	for i := range 6 {
		pos := vec(100+float64(i)*150, 100)
		w.AddObject(object.NewAsteroid(pos, vec(0, 0), 20))
		w.AddObject(object.NewShot(pos, vec(0, 0), 5))
	}
	// One asteroid without a shot
	survivor := object.NewAsteroid(vec(1000, 600), vec(0, 0), 20)
	w.AddObject(survivor)

	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 1 || w.Asteroids[0] != survivor {
		t.Errorf("got %d asteroids, want only the survivor", len(w.Asteroids))
	}
	if len(w.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(w.Shots))
	}
}

func TestShotHitsAsteroidLargerThanGridCell(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(300, 200), vec(0, 0), 200))
	w.AddObject(object.NewShot(vec(480, 200), vec(0, 0), 5))

	w.Tick(0, input.Input{})

	if len(w.Shots) != 0 {
		t.Errorf("got %d shots, want 0", len(w.Shots))
	}
	if len(w.Asteroids) != 2 {
		t.Errorf("got %d asteroids, want 2", len(w.Asteroids))
	}
}

func TestMissedShotKeepsFlying(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(100, 100), vec(0, 0), 20))
	w.AddObject(object.NewShot(vec(100, 126), vec(0, 0), 5))

	w.Tick(0, input.Input{})

	if len(w.Asteroids) != 1 || len(w.Shots) != 1 {
		t.Errorf("got %d asteroids and %d shots, want 1 and 1", len(w.Asteroids), len(w.Shots))
	}
}

func TestFiringAddsShotThatLeavesPlayfield(t *testing.T) {
	w := newQuietWorld(t)

	w.Tick(16*time.Millisecond, input.Input{Space: true})
	if len(w.Shots) != 1 {
		t.Fatalf("got %d shots, want 1", len(w.Shots))
	}

	w.Tick(time.Second, input.Input{})
	if len(w.Shots) != 0 {
		t.Errorf("got %d shots after leaving the playfield, want 0", len(w.Shots))
	}
}

func TestWorldSpawnsAsteroidsOnInterval(t *testing.T) {
	w := NewWorld(config.Default(), WithRand(NewRand(7)))

	for range 7 {
		w.Tick(100*time.Millisecond, input.Input{})
	}
	if len(w.Asteroids) != 0 {
		t.Fatalf("got %d asteroids before the interval elapsed, want 0", len(w.Asteroids))
	}

	w.Tick(100*time.Millisecond, input.Input{})
	w.Tick(100*time.Millisecond, input.Input{})
	if len(w.Asteroids) != 1 {
		t.Fatalf("got %d asteroids after one interval, want 1", len(w.Asteroids))
	}
	if w.Status() != StatusRunning {
		t.Errorf("status = %v, want running", w.Status())
	}
}

func TestDebrisExpires(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(100, 100), vec(0, 0), 20))
	w.AddObject(object.NewShot(vec(100, 100), vec(0, 0), 5))

	w.Tick(0, input.Input{})
	if len(w.Particles) == 0 {
		t.Fatal("expected debris after a hit")
	}

	w.Tick(time.Second, input.Input{})
	if len(w.Particles) != 0 {
		t.Errorf("got %d particles after their lifetime, want 0", len(w.Particles))
	}
}

func TestWorldDraw(t *testing.T) {
	w := newQuietWorld(t)
	w.AddObject(object.NewAsteroid(vec(100, 100), vec(0, 0), 20))
	w.AddObject(object.NewAsteroid(vec(300, 100), vec(0, 0), 40))
	w.AddObject(object.NewShot(vec(500, 500), vec(0, 0), 5))

	var s countingSurface
	w.Draw(&s)

	if s.circles != 3 {
		t.Errorf("circles = %d, want 3", s.circles)
	}
	if s.polygons != 1 {
		t.Errorf("polygons = %d, want 1", s.polygons)
	}
}

func TestSpawnRejectsUnknownObjects(t *testing.T) {
	w := newQuietWorld(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	w.Spawn(object.NewAsteroidField(1))
}

func TestSameSeedSameWorld(t *testing.T) {
	run := func() []physics.Vector {
		w := NewWorld(config.Default(), WithRand(NewRand(42)))
		for range 40 {
			w.Tick(100*time.Millisecond, input.Input{})
		}
		var out []physics.Vector
		for _, a := range w.Asteroids {
			out = append(out, a.Position, a.Velocity)
		}
		return out
	}

	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Error("worlds with the same seed diverged")
	}
}
