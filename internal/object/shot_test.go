package object

import (
	"testing"
	"time"

	"github.com/tomz197/asteroids/internal/physics"
)

func TestShotFliesStraight(t *testing.T) {
	ctx, _ := newTestContext(100*time.Millisecond, 1)
	s := NewShot(physics.Vector{X: 640, Y: 360}, physics.Vector{X: 0, Y: -500}, 5)

	if s.Update(ctx) {
		t.Fatal("shot inside the playfield should not be removed")
	}
	if !approx(s.Position.Y, 310, 1e-9) || s.Position.X != 640 {
		t.Errorf("position = %v, want (640, 310)", s.Position)
	}
}

func TestShotLeavesPlayfield(t *testing.T) {
	ctx, _ := newTestContext(100*time.Millisecond, 1)
	s := NewShot(physics.Vector{X: 640, Y: 20}, physics.Vector{X: 0, Y: -500}, 5)

	if !s.Update(ctx) {
		t.Errorf("shot at %v should be removed once outside the playfield", s.Position)
	}
}

func TestShotDestroyed(t *testing.T) {
	s := NewShot(physics.Vector{}, physics.Vector{}, 5)
	if s.IsDestroyed() {
		t.Fatal("new shot should be alive")
	}
	s.MarkDestroyed()
	if !s.IsDestroyed() {
		t.Error("shot should be destroyed after MarkDestroyed")
	}
}
