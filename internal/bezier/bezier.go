// Package bezier implements the bicubic road patch a track strip is made of.
package bezier

import (
	"roadstrip/internal/aabb"
	"roadstrip/internal/common"

	"github.com/golang/geo/r3"
)

// MinEdge is the shortest edge a usable patch may have.
const MinEdge = 1e-4

// Divisions is the number of quads per side used for ray collision.
const Divisions = 8

// Patch is a bicubic Bezier surface. Row 0 is the front edge (the end a car
// drives towards), row 3 the back edge; column 0 is the left side.
type Patch struct {
	Points [4][4]r3.Vector

	racingLine    r3.Vector
	hasRacingLine bool
	malformed     bool

	// Tessellated surface, (Divisions+1)^2 vertices row-major.
	grid []r3.Vector
}

// New returns a patch with the given control points.
func New(points [4][4]r3.Vector) *Patch {
	p := &Patch{Points: points}
	p.tessellate()
	return p
}

// Flat returns a planar patch spanning the four corners.
func Flat(fl, fr, bl, br r3.Vector) *Patch {
	var pts [4][4]r3.Vector
	for r := 0; r < 4; r++ {
		left := common.Lerp(fl, bl, float64(r)/3)
		right := common.Lerp(fr, br, float64(r)/3)
		for c := 0; c < 4; c++ {
			pts[r][c] = common.Lerp(left, right, float64(c)/3)
		}
	}
	return New(pts)
}

// FL returns the front left corner.
func (p *Patch) FL() r3.Vector { return p.Points[0][0] }

// FR returns the front right corner.
func (p *Patch) FR() r3.Vector { return p.Points[0][3] }

// BL returns the back left corner.
func (p *Patch) BL() r3.Vector { return p.Points[3][0] }

// BR returns the back right corner.
func (p *Patch) BR() r3.Vector { return p.Points[3][3] }

// AABB returns the box of the control points, which contains the surface.
func (p *Patch) AABB() aabb.Box {
	b := aabb.Empty()
	for r := range p.Points {
		for _, pt := range p.Points[r] {
			b = b.Extend(pt)
		}
	}
	return b
}

// CheckForProblems reports whether the patch is unusable: a malformed record,
// a non-finite control point, or a collapsed edge.
func (p *Patch) CheckForProblems() bool {
	if p.malformed {
		return true
	}
	for r := range p.Points {
		for _, pt := range p.Points[r] {
			if !common.Finite(pt) {
				return true
			}
		}
	}
	edges := [][2]r3.Vector{
		{p.FL(), p.FR()},
		{p.BL(), p.BR()},
		{p.FL(), p.BL()},
		{p.FR(), p.BR()},
	}
	for _, e := range edges {
		if e[0].Distance(e[1]) < MinEdge {
			return true
		}
	}
	return false
}

// Reverse flips the driving direction: front becomes back and left becomes
// right. Reversing twice restores the patch.
func (p *Patch) Reverse() {
	old := p.Points
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p.Points[r][c] = old[3-r][3-c]
		}
	}
	p.tessellate()
}

// RacingLine returns the point the racing line passes through on this patch.
// Without an explicit value it is the middle of the front edge.
func (p *Patch) RacingLine() r3.Vector {
	if p.hasRacingLine {
		return p.racingLine
	}
	return common.Lerp(p.FL(), p.FR(), 0.5)
}

// SetRacingLine overrides the racing line point.
func (p *Patch) SetRacingLine(pt r3.Vector) {
	p.racingLine = pt
	p.hasRacingLine = true
}

// Eval returns the surface point at (u, v) in [0,1]^2, u across from left
// to right and v from front to back.
func (p *Patch) Eval(u, v float64) r3.Vector {
	bu := bernstein(u)
	bv := bernstein(v)
	var out r3.Vector
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out = out.Add(p.Points[r][c].Mul(bv[r] * bu[c]))
		}
	}
	return out
}

func bernstein(t float64) [4]float64 {
	s := 1 - t
	return [4]float64{s * s * s, 3 * t * s * s, 3 * t * t * s, t * t * t}
}

func (p *Patch) tessellate() {
	n := Divisions + 1
	if cap(p.grid) < n*n {
		p.grid = make([]r3.Vector, n*n)
	}
	p.grid = p.grid[:n*n]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p.grid[r*n+c] = p.Eval(float64(c)/Divisions, float64(r)/Divisions)
		}
	}
}
