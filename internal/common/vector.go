package common

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// TopDown projects a world point onto the ground plane (Z is up).
func TopDown(p r3.Vector) Vec2 {
	return Vec2{p.X, p.Y}
}

// Lift places a ground-plane point at height z.
func Lift(v Vec2, z float64) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: z}
}

// Lerp interpolates between a and b, returning them exactly at t = 0 and 1.
func Lerp(a, b r3.Vector, t float64) r3.Vector {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Finite reports whether every component of p is a finite number.
func Finite(p r3.Vector) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
