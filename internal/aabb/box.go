// Package aabb holds axis-aligned bounding boxes and an immutable spatial
// index over them for ray segment queries.
package aabb

import (
	"math"

	"github.com/golang/geo/r3"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vector
}

// Empty returns an inverted box that any Extend call replaces.
func Empty() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// Of returns the smallest box containing all points.
func Of(points ...r3.Vector) Box {
	b := Empty()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// IsEmpty reports whether the box contains no point.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to contain p.
func (b Box) Extend(p r3.Vector) Box {
	return Box{
		Min: r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the box containing both b and o.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Pad grows the box by d on every side.
func (b Box) Pad(d float64) Box {
	v := r3.Vector{X: d, Y: d, Z: d}
	return Box{Min: b.Min.Sub(v), Max: b.Max.Add(v)}
}

// Size returns the extent along each axis.
func (b Box) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b Box) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether the two boxes share at least one point.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Ray is the segment Origin + Dir*t for t in [0, Length].
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
	Length float64
}

// NewRay builds a ray segment.
func NewRay(origin, dir r3.Vector, length float64) Ray {
	return Ray{Origin: origin, Dir: dir, Length: length}
}

// At returns the point at parameter t.
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Dir.Mul(t))
}

// End returns the far end of the segment.
func (r Ray) End() r3.Vector {
	return r.At(r.Length)
}

// Bounds returns the box spanned by the segment.
func (r Ray) Bounds() Box {
	return Of(r.Origin, r.End())
}

// IntersectsRay runs the slab test of the segment against the box.
func (b Box) IntersectsRay(r Ray) bool {
	if b.IsEmpty() || r.Length < 0 {
		return false
	}
	tmin, tmax := 0.0, r.Length
	o := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			// Parallel to the slab: inside or never.
			if o[i] < lo[i] || o[i] > hi[i] {
				return false
			}
			continue
		}
		inv := 1 / d[i]
		t0 := (lo[i] - o[i]) * inv
		t1 := (hi[i] - o[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
		if tmin > tmax {
			return false
		}
	}
	return true
}
