// Package physics provides 2D vector math, collision tests and distance utilities.
package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vector is a 2D point or direction in world units.
// Treated as an immutable value: every operation returns a new Vector.
type Vector = r2.Point

// Rotate returns v rotated counter-clockwise by deg degrees.
func Rotate(v Vector, deg float64) Vector {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle returns the unit vector obtained by rotating the reference "up" axis (0, 1) by deg degrees.
func FromAngle(deg float64) Vector {
	return Rotate(Vector{X: 0, Y: 1}, deg)
}

// AngleBetween returns the signed angle in degrees that rotates a onto b, in (-180, 180].
func AngleBetween(a, b Vector) float64 {
	return math.Atan2(a.Cross(b), a.Dot(b)) * 180 / math.Pi
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vector) float64 {
	return b.Sub(a).Norm()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vector) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// PointInCircle checks if a point is within radius of a center.
func PointInCircle(p, center Vector, radius float64) bool {
	return DistanceSquared(p, center) <= radius*radius
}

// CirclesOverlap checks if two circles overlap. Touching circles
// (distance exactly r1+r2) count as overlapping.
func CirclesOverlap(c1 Vector, r1 float64, c2 Vector, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) <= minDist*minDist
}
