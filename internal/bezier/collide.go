package bezier

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	parallelEpsilon = 1e-12
	// Rays through a shared tessellation edge must hit at least one side.
	edgeEpsilon = 1e-9
)

// Collide casts the segment origin + dir*t, t in [0, seglen], against the
// surface and returns the nearest hit and the surface normal there, facing
// back towards the origin.
func (p *Patch) Collide(origin, dir r3.Vector, seglen float64) (point, normal r3.Vector, ok bool) {
	if len(p.grid) == 0 {
		p.tessellate()
	}
	n := Divisions + 1
	best := math.Inf(1)
	for r := 0; r < Divisions; r++ {
		for c := 0; c < Divisions; c++ {
			a := p.grid[r*n+c]
			b := p.grid[r*n+c+1]
			d := p.grid[(r+1)*n+c]
			e := p.grid[(r+1)*n+c+1]
			for _, tri := range [2][3]r3.Vector{{a, b, e}, {a, e, d}} {
				t, hit := rayTriangle(origin, dir, tri[0], tri[1], tri[2])
				if !hit || t > seglen || t >= best {
					continue
				}
				best = t
				normal = tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
			}
		}
	}
	if math.IsInf(best, 1) {
		return r3.Vector{}, r3.Vector{}, false
	}
	normal = normal.Normalize()
	if normal.Dot(dir) > 0 {
		normal = normal.Mul(-1)
	}
	return origin.Add(dir.Mul(best)), normal, true
}

// rayTriangle is the Moller-Trumbore intersection; t is in units of dir.
func rayTriangle(origin, dir, v0, v1, v2 r3.Vector) (float64, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	h := dir.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < parallelEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := origin.Sub(v0)
	u := s.Dot(h) * inv
	if u < -edgeEpsilon || u > 1+edgeEpsilon {
		return 0, false
	}
	q := s.Cross(e1)
	w := dir.Dot(q) * inv
	if w < -edgeEpsilon || u+w > 1+edgeEpsilon {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
