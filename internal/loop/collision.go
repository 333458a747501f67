package loop

import (
	"github.com/tomz197/asteroids/internal/object"
)

// checkPlayerCollisions reports whether any live asteroid touches the player.
func (w *World) checkPlayerCollisions() bool {
	if w.Player == nil {
		return false
	}
	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		if a.CollidesWith(w.Player) {
			return true
		}
	}
	return false
}

// checkShotCollisions splits every asteroid touched by a shot. Each shot is
// consumed by the first asteroid it hits, and an asteroid reacts to at most
// one shot per tick. Children spawned by a split are queued, so they are not
// tested until the next tick.
func (w *World) checkShotCollisions(ctx object.UpdateContext) {
	if len(w.Shots) == 0 || len(w.Asteroids) == 0 {
		return
	}

	// Build grid over shots; the largest shot radius bounds the query reach.
	w.shotGrid.Clear()
	maxShotRadius := 0.0
	for i, s := range w.Shots {
		w.shotGrid.Insert(s.Position, i)
		maxShotRadius = max(maxShotRadius, s.Radius)
	}

	for _, a := range w.Asteroids {
		if a.IsDestroyed() {
			continue
		}

		hit := w.findShot(a, maxShotRadius)
		if hit == nil {
			continue
		}
		hit.MarkDestroyed()
		a.Split(ctx)
		w.logger.Debug("asteroid hit", "radius", a.Radius, "x", a.Position.X, "y", a.Position.Y)
	}
}

// findShot returns the first live shot touching a, or nil.
// Asteroids too large for the grid neighbourhood fall back to a linear scan.
func (w *World) findShot(a *object.Asteroid, maxShotRadius float64) *object.Shot {
	var hit *object.Shot
	test := func(i int) bool {
		s := w.Shots[i]
		if s.IsDestroyed() || !a.CollidesWith(s) {
			return false
		}
		hit = s
		return true
	}

	if a.Radius+maxShotRadius > w.gridCellSize {
		for i := range w.Shots {
			if test(i) {
				break
			}
		}
		return hit
	}

	w.shotGrid.QueryAround(a.Position, test)
	return hit
}
