package loop

import (
	"time"

	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/object"
)

// Tick advances the world by dt using the input snapshot for this frame.
//
// Phases run in a fixed order: the asteroid field spawns, every entity
// updates, the player is tested against all asteroids, and finally every
// asteroid is tested against the shots. Objects spawned during a phase join
// the live sets when that phase ends. Once the player has been destroyed the
// world is frozen and further calls return StatusGameOver without changes.
func (w *World) Tick(dt time.Duration, in input.Input) Status {
	if w.status == StatusGameOver {
		return StatusGameOver
	}

	ctx := w.updateContext(dt, in)

	w.field.Update(ctx)
	w.FlushSpawned()

	w.updateObjects(ctx)
	w.FlushSpawned()

	if w.checkPlayerCollisions() {
		w.killPlayer(ctx)
		return w.status
	}

	w.checkShotCollisions(ctx)
	w.removeDestroyed()
	w.FlushSpawned()

	return w.status
}

// updateObjects updates all objects and removes any that request removal.
func (w *World) updateObjects(ctx object.UpdateContext) {
	if w.Player != nil {
		w.Player.Update(ctx)
	}

	// Reuse backing arrays
	asteroids := w.Asteroids[:0]
	for _, a := range w.Asteroids {
		if !a.Update(ctx) {
			asteroids = append(asteroids, a)
		}
	}
	clear(w.Asteroids[len(asteroids):])
	w.Asteroids = asteroids

	shots := w.Shots[:0]
	for _, s := range w.Shots {
		if !s.Update(ctx) {
			shots = append(shots, s)
		}
	}
	clear(w.Shots[len(shots):])
	w.Shots = shots

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Update(ctx) {
			object.ReleaseObject(p)
			continue
		}
		particles = append(particles, p)
	}
	clear(w.Particles[len(particles):])
	w.Particles = particles
}

// removeDestroyed drops asteroids and shots marked destroyed during collision handling.
func (w *World) removeDestroyed() {
	asteroids := w.Asteroids[:0]
	for _, a := range w.Asteroids {
		if !a.IsDestroyed() {
			asteroids = append(asteroids, a)
		}
	}
	clear(w.Asteroids[len(asteroids):])
	w.Asteroids = asteroids

	shots := w.Shots[:0]
	for _, s := range w.Shots {
		if !s.IsDestroyed() {
			shots = append(shots, s)
		}
	}
	clear(w.Shots[len(shots):])
	w.Shots = shots
}

// killPlayer destroys the ship and freezes the world.
func (w *World) killPlayer(ctx object.UpdateContext) {
	if w.Player == nil {
		return
	}

	object.SpawnExplosion(w.Player.Position, 20, 80, 1.0, ctx)
	w.FlushSpawned()

	w.logger.Debug("player destroyed", "x", w.Player.Position.X, "y", w.Player.Position.Y, "asteroids", len(w.Asteroids))
	w.Player = nil
	w.status = StatusGameOver
}
