// Package trackgen produces simple strips for tools and tests.
package trackgen

import (
	"bytes"
	"math"

	"roadstrip/internal/bezier"
	"roadstrip/internal/common"

	"github.com/golang/geo/r3"
)

// Oval returns a closed loop of flat patches around an ellipse centred on
// the origin, driven counter-clockwise. The last patch's front edge lands
// on the first patch's back edge.
func Oval(segments int, rx, ry, width float64) []*bezier.Patch {
	if segments < 1 {
		return nil
	}
	edge := func(i int) (left, right r3.Vector) {
		theta := 2 * math.Pi * float64(i%segments) / float64(segments)
		c := common.Vec2{X: rx * math.Cos(theta), Y: ry * math.Sin(theta)}
		tangent := common.Vec2{X: -rx * math.Sin(theta), Y: ry * math.Cos(theta)}.Normalize()
		off := tangent.Perp().Scale(width / 2)
		return common.Lift(c.Add(off), 0), common.Lift(c.Sub(off), 0)
	}
	patches := make([]*bezier.Patch, segments)
	for i := range patches {
		bl, br := edge(i)
		fl, fr := edge(i + 1)
		patches[i] = bezier.Flat(fl, fr, bl, br)
	}
	return patches
}

// Straight returns n flat patches of the given length laid along +Y, with
// the left edge at x = -width/2.
func Straight(n int, length, width float64) []*bezier.Patch {
	patches := make([]*bezier.Patch, n)
	for i := range patches {
		back, front := float64(i)*length, float64(i+1)*length
		patches[i] = bezier.Flat(
			r3.Vector{X: -width / 2, Y: front},
			r3.Vector{X: width / 2, Y: front},
			r3.Vector{X: -width / 2, Y: back},
			r3.Vector{X: width / 2, Y: back},
		)
	}
	return patches
}

// Encode writes patches in the geometry stream format.
func Encode(patches []*bezier.Patch) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_ = bezier.Write(&buf, patches...)
	return buf.Bytes()
}
